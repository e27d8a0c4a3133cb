package entity

import (
	"time"
)

type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `json:"address"`

	// running counters, bumped only by the order-creation path
	OrderCount    int        `gorm:"default:0" json:"order_count"`
	TotalSpent    float64    `gorm:"type:decimal(10,2);default:0" json:"total_spent"`
	LastOrderDate *time.Time `json:"last_order_date"`

	Orders  []Order  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Reviews []Review `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
