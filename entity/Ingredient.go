package entity

type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Sandwiches []Sandwich `gorm:"many2many:sandwich_ingredients" json:"-"`
}
