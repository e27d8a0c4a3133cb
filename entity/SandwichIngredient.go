package entity

// SandwichIngredient is the explicit many2many join entity, registered with
// SetupJoinTable so the cascade rules apply to the join rows.
type SandwichIngredient struct {
	SandwichID   uint `gorm:"primaryKey"`
	IngredientID uint `gorm:"primaryKey"`
}
