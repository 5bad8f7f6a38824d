package domain

// Instruction is one recipe line: a dessert uses an ingredient in some quantity,
// optionally with a substitution note. It is the only link between the two tables.
type Instruction struct {
	ID                     int64  `gorm:"column:id;primaryKey" json:"id"`
	ChangeIngredientOption string `gorm:"column:change_ingredient_option" json:"change_ingredient_option"`
	QtyOfIngredient        string `gorm:"column:qty_of_ingredient" json:"qty_of_ingredient"`
	DessertID              int64  `gorm:"column:dessert_id;not null;index" json:"dessert_id"`
	IngredientID           int64  `gorm:"column:ingredient_id;not null;index" json:"ingredient_id"`

	Dessert    *Dessert    `gorm:"foreignKey:DessertID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Instruction) TableName() string { return "instructions" }
