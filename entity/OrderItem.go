package entity

type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null" json:"order_id"`
	Order   Order `json:"-"`

	SandwichID uint     `gorm:"not null" json:"sandwich_id"`
	Sandwich   Sandwich `json:"-"`

	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"` // snapshot of the sandwich price at order time
}
