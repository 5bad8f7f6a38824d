package repository

import (
	"context"

	"dessertbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InstructionView is an instruction row joined with the names of its dessert
// and ingredient at query time.
type InstructionView struct {
	ID                     int64
	ChangeIngredientOption string
	QtyOfIngredient        string
	DessertID              int64
	DessertName            string
	IngredientID           int64
	IngredientName         string
}

type InstructionRepository struct {
	db *gorm.DB
}

func NewInstructionRepository(db *gorm.DB) *InstructionRepository {
	return &InstructionRepository{db: db}
}

func (r *InstructionRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("instructions").
		Select(`instructions.id,
			instructions.change_ingredient_option,
			instructions.qty_of_ingredient,
			instructions.dessert_id,
			desserts.name AS dessert_name,
			instructions.ingredient_id,
			ingredients.name AS ingredient_name`).
		Joins("JOIN desserts ON desserts.id = instructions.dessert_id").
		Joins("JOIN ingredients ON ingredients.id = instructions.ingredient_id").
		Order("instructions.id")
}

func (r *InstructionRepository) ListViews(ctx context.Context) ([]InstructionView, error) {
	var rows []InstructionView
	err := r.views(ctx).Scan(&rows).Error
	return rows, err
}

// GetView returns gorm.ErrRecordNotFound when no row matches.
func (r *InstructionRepository) GetView(ctx context.Context, id int64) (*InstructionView, error) {
	var rows []InstructionView
	if err := r.views(ctx).Where("instructions.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *InstructionRepository) ListViewsForDessert(ctx context.Context, dessertID int64) ([]InstructionView, error) {
	var rows []InstructionView
	err := r.views(ctx).Where("instructions.dessert_id = ?", dessertID).Scan(&rows).Error
	return rows, err
}

func (r *InstructionRepository) ListViewsForIngredient(ctx context.Context, ingredientID int64) ([]InstructionView, error) {
	var rows []InstructionView
	err := r.views(ctx).Where("instructions.ingredient_id = ?", ingredientID).Scan(&rows).Error
	return rows, err
}

func (r *InstructionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Instruction{}, id)
}

func (r *InstructionRepository) Create(ctx context.Context, in *domain.Instruction) error {
	return r.db.WithContext(ctx).Omit("id", clause.Associations).Create(in).Error
}

func (r *InstructionRepository) Update(ctx context.Context, in *domain.Instruction) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Instruction{}).
		Where("id = ?", in.ID).
		Updates(map[string]any{
			"change_ingredient_option": in.ChangeIngredientOption,
			"qty_of_ingredient":        in.QtyOfIngredient,
			"dessert_id":               in.DessertID,
			"ingredient_id":            in.IngredientID,
		})
	return tx.RowsAffected, tx.Error
}

func (r *InstructionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Instruction{}, id)
	return tx.RowsAffected, tx.Error
}

// FindPair returns the oldest recipe line joining the dessert and ingredient,
// or gorm.ErrRecordNotFound.
func (r *InstructionRepository) FindPair(ctx context.Context, dessertID, ingredientID int64) (*domain.Instruction, error) {
	var in domain.Instruction
	err := r.db.WithContext(ctx).
		Where("dessert_id = ? AND ingredient_id = ?", dessertID, ingredientID).
		Order("id").
		First(&in).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// DeletePair removes every recipe line joining the dessert and ingredient.
func (r *InstructionRepository) DeletePair(ctx context.Context, dessertID, ingredientID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("dessert_id = ? AND ingredient_id = ?", dessertID, ingredientID).
		Delete(&domain.Instruction{})
	return tx.RowsAffected, tx.Error
}
