package instruction

import (
	"dessertbook/internal/domain"
	"dessertbook/internal/repository"
)

// InstructionDTO is a recipe line with the dessert and ingredient names resolved.
type InstructionDTO struct {
	ID                     int64  `json:"id" form:"id"`
	ChangeIngredientOption string `json:"change_ingredient_option" form:"change_ingredient_option" validate:"max=255"`
	QtyOfIngredient        string `json:"qty_of_ingredient" form:"qty_of_ingredient" validate:"max=100"`
	DessertID              int64  `json:"dessert_id" form:"dessert_id" validate:"gt=0"`
	DessertName            string `json:"dessert_name,omitempty"`
	IngredientID           int64  `json:"ingredient_id" form:"ingredient_id" validate:"gt=0"`
	IngredientName         string `json:"ingredient_name,omitempty"`
}

func (d InstructionDTO) toEntity() *domain.Instruction {
	return &domain.Instruction{
		ID:                     d.ID,
		ChangeIngredientOption: d.ChangeIngredientOption,
		QtyOfIngredient:        d.QtyOfIngredient,
		DessertID:              d.DessertID,
		IngredientID:           d.IngredientID,
	}
}

func fromView(v repository.InstructionView) InstructionDTO {
	return InstructionDTO{
		ID:                     v.ID,
		ChangeIngredientOption: v.ChangeIngredientOption,
		QtyOfIngredient:        v.QtyOfIngredient,
		DessertID:              v.DessertID,
		DessertName:            v.DessertName,
		IngredientID:           v.IngredientID,
		IngredientName:         v.IngredientName,
	}
}

func fromViews(views []repository.InstructionView) []InstructionDTO {
	out := make([]InstructionDTO, 0, len(views))
	for _, v := range views {
		out = append(out, fromView(v))
	}
	return out
}
