package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderWritesItemsAndCustomerStats(t *testing.T) {
	svc, db := newOrderService(t)

	cust := seedCustomer(t, db, "alice")
	sw := seedSandwich(t, db, "Club", 5.00)

	v, err := svc.Create(&OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: sw.ID, Quantity: 2, Price: f64(5.00)}},
		TotalAmount: f64(10.00),
	})
	require.NoError(t, err)

	assert.Equal(t, cust.ID, v.CustomerID)
	assert.Equal(t, entity.OrderStatusPending, v.Status)
	assert.Equal(t, 10.00, v.TotalAmount)
	assert.NotEmpty(t, v.TrackingNumber)
	require.Len(t, v.Items, 1)
	assert.Equal(t, sw.ID, v.Items[0].SandwichID)
	assert.Equal(t, "Club", v.Items[0].SandwichName)
	assert.Equal(t, 2, v.Items[0].Quantity)
	assert.Equal(t, 5.00, v.Items[0].Price)

	var reloaded entity.Customer
	require.NoError(t, db.First(&reloaded, cust.ID).Error)
	assert.Equal(t, 1, reloaded.OrderCount)
	assert.InDelta(t, 10.00, reloaded.TotalSpent, 0.001)
	assert.NotNil(t, reloaded.LastOrderDate)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	svc, db := newOrderService(t)
	sw := seedSandwich(t, db, "Club", 5.00)

	_, err := svc.Create(&OrderInput{
		CustomerID:  999,
		Items:       []OrderItemIn{{SandwichID: sw.ID, Quantity: 1, Price: f64(5.00)}},
		TotalAmount: f64(5.00),
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateOrderInvalidSandwichRollsBackEverything(t *testing.T) {
	svc, db := newOrderService(t)
	cust := seedCustomer(t, db, "bob")

	_, err := svc.Create(&OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: 999, Quantity: 1, Price: f64(4.00)}},
		TotalAmount: f64(4.00),
	})
	require.Error(t, err)

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	var reloaded entity.Customer
	require.NoError(t, db.First(&reloaded, cust.ID).Error)
	assert.Zero(t, reloaded.OrderCount)
	assert.Zero(t, reloaded.TotalSpent)
	assert.Nil(t, reloaded.LastOrderDate)
}

func TestUpdateOrderReplacesItemsAndLeavesStatsAlone(t *testing.T) {
	svc, db := newOrderService(t)

	cust := seedCustomer(t, db, "carol")
	swA := seedSandwich(t, db, "Club", 5.00)
	swB := seedSandwich(t, db, "BLT", 6.00)

	created, err := svc.Create(&OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: swA.ID, Quantity: 1, Price: f64(5.00)}},
		TotalAmount: f64(5.00),
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: swB.ID, Quantity: 3, Price: f64(6.00)}},
		TotalAmount: f64(18.00),
	})
	require.NoError(t, err)

	assert.Equal(t, 18.00, updated.TotalAmount)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, swB.ID, updated.Items[0].SandwichID)
	assert.Equal(t, 3, updated.Items[0].Quantity)

	// update does not re-adjust the counters
	var reloaded entity.Customer
	require.NoError(t, db.First(&reloaded, cust.ID).Error)
	assert.Equal(t, 1, reloaded.OrderCount)
	assert.InDelta(t, 5.00, reloaded.TotalSpent, 0.001)
}

func TestUpdateOrderNotFound(t *testing.T) {
	svc, db := newOrderService(t)
	sw := seedSandwich(t, db, "Club", 5.00)
	cust := seedCustomer(t, db, "dave")

	_, err := svc.Update(999, &OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: sw.ID, Quantity: 1, Price: f64(5.00)}},
		TotalAmount: f64(5.00),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrderWithZeroItems(t *testing.T) {
	svc, db := newOrderService(t)
	cust := seedCustomer(t, db, "erin")

	// inserted outside the service: the composer must still produce items: []
	order := entity.Order{CustomerID: cust.ID, TotalAmount: 0, Status: entity.OrderStatusPending, TrackingNumber: "trk-empty"}
	require.NoError(t, db.Create(&order).Error)

	v, err := svc.Get(order.ID)
	require.NoError(t, err)
	require.NotNil(t, v.Items)
	assert.Empty(t, v.Items)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Items)
	assert.Empty(t, list[0].Items)
}

func TestOrderViewCarriesCustomerFields(t *testing.T) {
	svc, db := newOrderService(t)

	cust := seedCustomer(t, db, "frank")
	sw := seedSandwich(t, db, "Cuban", 8.00)

	v, err := svc.Create(&OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: sw.ID, Quantity: 1, Price: f64(8.00)}},
		TotalAmount: f64(8.00),
	})
	require.NoError(t, err)

	assert.Equal(t, "frank", v.CustomerName)
	assert.Equal(t, "frank@example.com", v.CustomerEmail)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, db := newOrderService(t)

	cust := seedCustomer(t, db, "gwen")
	sw := seedSandwich(t, db, "Club", 5.00)

	created, err := svc.Create(&OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: sw.ID, Quantity: 1, Price: f64(5.00)}},
		TotalAmount: f64(5.00),
	})
	require.NoError(t, err)

	v, err := svc.UpdateStatus(created.ID, entity.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, v.Status)

	_, err = svc.UpdateStatus(999, entity.OrderStatusReady)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	svc, db := newOrderService(t)

	cust := seedCustomer(t, db, "hank")
	sw := seedSandwich(t, db, "Club", 5.00)

	created, err := svc.Create(&OrderInput{
		CustomerID:  cust.ID,
		Items:       []OrderItemIn{{SandwichID: sw.ID, Quantity: 2, Price: f64(5.00)}},
		TotalAmount: f64(10.00),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	var items int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Zero(t, items)

	// stats keep the historical count even after the order is gone
	var reloaded entity.Customer
	require.NoError(t, db.First(&reloaded, cust.ID).Error)
	assert.Equal(t, 1, reloaded.OrderCount)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}
