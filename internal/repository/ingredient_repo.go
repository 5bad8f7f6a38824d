package repository

import (
	"context"

	"dessertbook/internal/domain"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) List(ctx context.Context) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	err := r.db.WithContext(ctx).Order("id").Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var i domain.Ingredient
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IngredientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Ingredient{}, id)
}

func (r *IngredientRepository) Create(ctx context.Context, i *domain.Ingredient) error {
	return r.db.WithContext(ctx).Omit("id").Create(i).Error
}

func (r *IngredientRepository) Update(ctx context.Context, i *domain.Ingredient) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Ingredient{}).
		Where("id = ?", i.ID).
		Updates(map[string]any{
			"name":        i.Name,
			"description": i.Description,
		})
	return tx.RowsAffected, tx.Error
}

func (r *IngredientRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Ingredient{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *IngredientRepository) ListForDessert(ctx context.Context, dessertID int64) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	sub := r.db.Model(&domain.Instruction{}).Select("ingredient_id").Where("dessert_id = ?", dessertID)
	err := r.db.WithContext(ctx).
		Where("id IN (?)", sub).
		Order("id").
		Find(&ingredients).Error
	return ingredients, err
}
