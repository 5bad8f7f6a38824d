package domain

// Dessert is a catalog entry. Ingredients are attached through Instruction rows.
type Dessert struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description;not null" json:"description"`
	SpecificTag string `gorm:"column:specific_tag" json:"specific_tag"`
}

func (Dessert) TableName() string { return "desserts" }
