package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService owns the order write path. Create and Update are single
// transactions: a partial failure never leaves an order without its items,
// and customer counters never move without a committed order.
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	SandwichID uint     `json:"sandwichId" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required,gte=1"`
	Price      *float64 `json:"price" binding:"required,gte=0"`
}

type OrderInput struct {
	CustomerID  uint          `json:"customerId" binding:"required"`
	Items       []OrderItemIn `json:"items" binding:"required,min=1,dive"`
	TotalAmount *float64      `json:"totalAmount" binding:"required,gte=0"`
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready delivered"`
}

type OrderView struct {
	repository.OrderRow
	Items []repository.ItemRow `json:"items"`
}

// ----- Composer -----

func (s *OrderService) List() ([]OrderView, error) {
	rows, err := s.Repo.ListRows()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := s.Repo.ItemRows(ids)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, composeOrder(row, items[row.ID]))
	}
	return views, nil
}

func (s *OrderService) Get(id uint) (*OrderView, error) {
	row, err := s.Repo.GetRow(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := s.Repo.ItemRows([]uint{row.ID})
	if err != nil {
		return nil, err
	}
	v := composeOrder(*row, items[row.ID])
	return &v, nil
}

func composeOrder(row repository.OrderRow, items []repository.ItemRow) OrderView {
	if items == nil {
		// zero-item orders still serialize as items: []
		items = make([]repository.ItemRow, 0)
	}
	return OrderView{OrderRow: row, Items: items}
}

// ----- Coordinator -----

func (s *OrderService) Create(in *OrderInput) (*OrderView, error) {
	order := entity.Order{
		CustomerID:     in.CustomerID,
		TotalAmount:    *in.TotalAmount,
		Status:         entity.OrderStatusPending,
		TrackingNumber: uuid.NewString(),
		OrderDate:      time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// the FK would also catch this, but too late for a clean 404
		ok, err := s.Repo.CustomerExists(tx, in.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCustomerNotFound
		}

		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		if err := s.Repo.CreateItems(tx, buildItems(order.ID, in.Items)); err != nil {
			return err
		}
		return s.Repo.BumpCustomerStats(tx, in.CustomerID, *in.TotalAmount)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(order.ID)
}

// Update replaces the order's fields and its whole item list. Customer
// counters are intentionally left alone: they track order creation history,
// not the current totals (see DESIGN.md).
func (s *OrderService) Update(id uint, in *OrderInput) (*OrderView, error) {
	ok, err := s.Repo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.CustomerExists(tx, in.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCustomerNotFound
		}

		if err := s.Repo.Update(tx, id, in.CustomerID, *in.TotalAmount); err != nil {
			return err
		}
		if err := s.Repo.DeleteItems(tx, id); err != nil {
			return err
		}
		return s.Repo.CreateItems(tx, buildItems(id, in.Items))
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func buildItems(orderID uint, in []OrderItemIn) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.OrderItem{
			OrderID:    orderID,
			SandwichID: it.SandwichID,
			Quantity:   it.Quantity,
			Price:      *it.Price,
		})
	}
	return items
}

func (s *OrderService) UpdateStatus(id uint, status string) (*OrderView, error) {
	rows, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}

// Delete removes the order; its items go with it by cascade.
func (s *OrderService) Delete(id uint) error {
	rows, err := s.Repo.Delete(s.DB, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
