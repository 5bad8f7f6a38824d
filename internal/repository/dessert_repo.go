package repository

import (
	"context"

	"dessertbook/internal/domain"

	"gorm.io/gorm"
)

type DessertRepository struct {
	db *gorm.DB
}

// NewDessertRepository binds the repository to db, which may be a transaction.
func NewDessertRepository(db *gorm.DB) *DessertRepository {
	return &DessertRepository{db: db}
}

func (r *DessertRepository) List(ctx context.Context) ([]domain.Dessert, error) {
	var desserts []domain.Dessert
	err := r.db.WithContext(ctx).Order("id").Find(&desserts).Error
	return desserts, err
}

// GetByID returns gorm.ErrRecordNotFound when no row matches.
func (r *DessertRepository) GetByID(ctx context.Context, id int64) (*domain.Dessert, error) {
	var d domain.Dessert
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DessertRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Dessert{}, id)
}

func (r *DessertRepository) Create(ctx context.Context, d *domain.Dessert) error {
	return r.db.WithContext(ctx).Omit("id").Create(d).Error
}

// Update replaces every column of the row identified by d.ID and reports how
// many rows matched.
func (r *DessertRepository) Update(ctx context.Context, d *domain.Dessert) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Dessert{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"name":         d.Name,
			"description":  d.Description,
			"specific_tag": d.SpecificTag,
		})
	return tx.RowsAffected, tx.Error
}

func (r *DessertRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Dessert{}, id)
	return tx.RowsAffected, tx.Error
}

// ListForIngredient returns desserts with at least one recipe line using the ingredient.
func (r *DessertRepository) ListForIngredient(ctx context.Context, ingredientID int64) ([]domain.Dessert, error) {
	var desserts []domain.Dessert
	sub := r.db.Model(&domain.Instruction{}).Select("dessert_id").Where("ingredient_id = ?", ingredientID)
	err := r.db.WithContext(ctx).
		Where("id IN (?)", sub).
		Order("id").
		Find(&desserts).Error
	return desserts, err
}

func exists(ctx context.Context, db *gorm.DB, model any, id int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
