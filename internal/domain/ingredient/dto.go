package ingredient

import "dessertbook/internal/domain"

type IngredientDTO struct {
	ID          int64  `json:"id" form:"id"`
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"required,max=1000"`
}

func (d IngredientDTO) toEntity() *domain.Ingredient {
	return &domain.Ingredient{ID: d.ID, Name: d.Name, Description: d.Description}
}

func fromEntities(is []domain.Ingredient) []IngredientDTO {
	out := make([]IngredientDTO, 0, len(is))
	for _, i := range is {
		out = append(out, IngredientDTO{ID: i.ID, Name: i.Name, Description: i.Description})
	}
	return out
}
