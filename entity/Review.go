package entity

import (
	"time"
)

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `json:"-"`
	SandwichID uint     `gorm:"not null" json:"sandwich_id"`
	Sandwich   Sandwich `json:"-"`

	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
	Status     string    `gorm:"size:50;default:pending" json:"status"`
	ReviewDate time.Time `gorm:"autoCreateTime" json:"date"`
}
