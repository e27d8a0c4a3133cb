package entity

type PromoCode struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Code           string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountAmount float64 `gorm:"type:decimal(4,2);not null" json:"discount_amount"`
	Active         *bool   `gorm:"default:true" json:"active"`
}
