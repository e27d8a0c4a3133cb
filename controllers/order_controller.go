// controllers/order_controller.go
package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	views, err := ctl.Service.List()
	if err != nil {
		log.Error().Err(err).Msg("list orders")
		resp.ServerError(c)
		return
	}
	resp.OK(c, views)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	v, err := ctl.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		log.Error().Err(err).Msg("get order")
		resp.ServerError(c)
		return
	}
	resp.OK(c, v)
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var in services.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v, err := ctl.Service.Create(&in)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			resp.BadRequest(c, "Customer not found")
			return
		}
		log.Error().Err(err).Msg("create order")
		resp.ServerError(c)
		return
	}
	resp.Created(c, v)
}

// PUT /api/orders/:id → replaces order fields and the whole item list
func (ctl *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v, err := ctl.Service.Update(uint(id), &in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "Order not found")
		case errors.Is(err, services.ErrCustomerNotFound):
			resp.BadRequest(c, "Customer not found")
		default:
			log.Error().Err(err).Msg("update order")
			resp.ServerError(c)
		}
		return
	}
	resp.OK(c, v)
}

// PATCH /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		log.Error().Err(err).Msg("update order status")
		resp.ServerError(c)
		return
	}
	resp.OK(c, v)
}

// DELETE /api/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctl.Service.Delete(uint(id))
	switch {
	case err == nil:
		resp.NoContent(c)
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "Order not found")
	default:
		log.Error().Err(err).Msg("delete order")
		resp.ServerError(c)
	}
}
