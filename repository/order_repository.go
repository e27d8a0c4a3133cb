package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// OrderRow is an order joined with its customer's display fields.
type OrderRow struct {
	ID             uint      `json:"id"`
	CustomerID     uint      `json:"customer_id"`
	TotalAmount    float64   `json:"total_amount"`
	Status         string    `json:"status"`
	TrackingNumber string    `json:"tracking_number"`
	OrderDate      time.Time `json:"order_date"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
}

func (r *OrderRepository) ListRows() ([]OrderRow, error) {
	var rows []OrderRow
	err := r.DB.Table("orders o").
		Select("o.id, o.customer_id, o.total_amount, o.status, o.tracking_number, o.order_date, c.name AS customer_name, c.email AS customer_email").
		Joins("LEFT JOIN customers c ON c.id = o.customer_id").
		Order("o.id").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) GetRow(id uint) (*OrderRow, error) {
	var row OrderRow
	res := r.DB.Table("orders o").
		Select("o.id, o.customer_id, o.total_amount, o.status, o.tracking_number, o.order_date, c.name AS customer_name, c.email AS customer_email").
		Joins("LEFT JOIN customers c ON c.id = o.customer_id").
		Where("o.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Update(tx *gorm.DB, id uint, customerID uint, totalAmount float64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).Updates(map[string]any{
		"customer_id":  customerID,
		"total_amount": totalAmount,
	}).Error
}

func (r *OrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Delete(&entity.Order{}, id)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Order{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Order items ----------------

// ItemRow is an order item joined with the sandwich's current name. The wire
// keys are camelCase, matching the embedded item shape the frontend consumes.
type ItemRow struct {
	OrderID      uint    `json:"-"`
	SandwichID   uint    `json:"sandwichId"`
	SandwichName string  `json:"sandwichName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// ItemRows groups composed item rows by order id. Orders with no items have
// no key in the map; callers must default to an empty slice, not nil.
func (r *OrderRepository) ItemRows(orderIDs []uint) (map[uint][]ItemRow, error) {
	out := make(map[uint][]ItemRow)
	if len(orderIDs) == 0 {
		return out, nil
	}

	var rows []ItemRow
	err := r.DB.Table("order_items oi").
		Select("oi.order_id, oi.sandwich_id, s.name AS sandwich_name, oi.quantity, oi.price").
		Joins("LEFT JOIN sandwiches s ON s.id = oi.sandwich_id").
		Where("oi.order_id IN ?", orderIDs).
		Order("oi.order_id, oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.OrderID] = append(out[row.OrderID], row)
	}
	return out, nil
}

func (r *OrderRepository) CreateItems(tx *gorm.DB, items []entity.OrderItem) error {
	return tx.Create(&items).Error
}

func (r *OrderRepository) DeleteItems(tx *gorm.DB, orderID uint) error {
	return tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

// ---------------- Customer stats ----------------

func (r *OrderRepository) CustomerExists(tx *gorm.DB, id uint) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.Customer{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// BumpCustomerStats applies the order-creation side effect: count +1, spent
// +amount, last order date now. Nothing else touches these counters.
func (r *OrderRepository) BumpCustomerStats(tx *gorm.DB, customerID uint, amount float64) error {
	return tx.Model(&entity.Customer{}).Where("id = ?", customerID).Updates(map[string]any{
		"order_count":     gorm.Expr("order_count + 1"),
		"total_spent":     gorm.Expr("total_spent + ?", amount),
		"last_order_date": time.Now(),
	}).Error
}
