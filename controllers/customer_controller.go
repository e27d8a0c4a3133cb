// controllers/customer_controller.go
package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CustomerController struct{ DB *gorm.DB }

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// ===== DTO =====

type CustomerReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ===== Handlers =====

// GET /api/customers
func (ctl *CustomerController) List(c *gin.Context) {
	customers := make([]entity.Customer, 0)
	if err := ctl.DB.Order("id").Find(&customers).Error; err != nil {
		log.Error().Err(err).Msg("list customers")
		resp.ServerError(c)
		return
	}
	resp.OK(c, customers)
}

// GET /api/customers/:id
func (ctl *CustomerController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cust entity.Customer
	if err := ctl.DB.First(&cust, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Customer not found")
			return
		}
		log.Error().Err(err).Msg("get customer")
		resp.ServerError(c)
		return
	}
	resp.OK(c, cust)
}

// POST /api/customers
func (ctl *CustomerController) Create(c *gin.Context) {
	var req CustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cust := entity.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := ctl.DB.Create(&cust).Error; err != nil {
		log.Error().Err(err).Msg("create customer")
		resp.ServerError(c)
		return
	}
	resp.Created(c, cust)
}

// PUT /api/customers/:id — contact fields only; the order counters belong to
// the order-creation path
func (ctl *CustomerController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ctl.DB.Model(&entity.Customer{}).Where("id = ?", id).Updates(map[string]any{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"address": req.Address,
	})
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("update customer")
		resp.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Customer not found")
		return
	}

	var cust entity.Customer
	if err := ctl.DB.First(&cust, id).Error; err != nil {
		log.Error().Err(err).Msg("reload customer")
		resp.ServerError(c)
		return
	}
	resp.OK(c, cust)
}

// DELETE /api/customers/:id
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := ctl.DB.Delete(&entity.Customer{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			resp.Conflict(c, "Customer has existing orders")
			return
		}
		log.Error().Err(res.Error).Msg("delete customer")
		resp.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Customer not found")
		return
	}
	resp.NoContent(c)
}
