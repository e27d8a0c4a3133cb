package entity

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `json:"-"`

	// caller-supplied, stored as given (not recomputed from items)
	TotalAmount    float64   `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status         string    `gorm:"size:50;default:pending" json:"status"`
	TrackingNumber string    `gorm:"size:50;uniqueIndex" json:"tracking_number"`
	OrderDate      time.Time `gorm:"autoCreateTime" json:"order_date"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
