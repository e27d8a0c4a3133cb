package entity

import (
	"time"
)

type Sandwich struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	Rating      float64   `gorm:"type:decimal(3,2);default:0" json:"rating"`
	Category    *string   `gorm:"size:50" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// join rows go away with the sandwich; ingredients themselves stay
	Ingredients []Ingredient `gorm:"many2many:sandwich_ingredients;constraint:OnDelete:CASCADE" json:"-"`

	// order items snapshot only the price, so a referenced sandwich cannot be deleted
	OrderItems []OrderItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Reviews    []Review    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
