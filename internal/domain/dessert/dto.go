package dessert

import "dessertbook/internal/domain"

type DessertDTO struct {
	ID          int64  `json:"id" form:"id"`
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"required,max=1000"`
	SpecificTag string `json:"specific_tag" form:"specific_tag" validate:"max=50"`
}

func (d DessertDTO) toEntity() *domain.Dessert {
	return &domain.Dessert{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		SpecificTag: d.SpecificTag,
	}
}

func fromEntity(d domain.Dessert) DessertDTO {
	return DessertDTO{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		SpecificTag: d.SpecificTag,
	}
}

func fromEntities(ds []domain.Dessert) []DessertDTO {
	out := make([]DessertDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, fromEntity(d))
	}
	return out
}
