// controllers/promocode_controller.go
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

type PromoCodeController struct{ DB *gorm.DB }

func NewPromoCodeController(db *gorm.DB) *PromoCodeController {
	return &PromoCodeController{DB: db}
}

// ===== DTO =====

type PromoCodeReq struct {
	Code           string   `json:"code" binding:"required"`
	DiscountAmount *float64 `json:"discount_amount" binding:"required,gte=0"`
	Active         *bool    `json:"active"`
}

// ===== Handlers =====

// GET /api/promocodes
func (ctl *PromoCodeController) List(c *gin.Context) {
	codes := make([]entity.PromoCode, 0)
	if err := ctl.DB.Order("id").Find(&codes).Error; err != nil {
		log.Error().Err(err).Msg("list promo codes")
		resp.ServerError(c)
		return
	}
	resp.OK(c, codes)
}

// GET /api/promocodes/:id
func (ctl *PromoCodeController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var pc entity.PromoCode
	if err := ctl.DB.First(&pc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Promo code not found")
			return
		}
		log.Error().Err(err).Msg("get promo code")
		resp.ServerError(c)
		return
	}
	resp.OK(c, pc)
}

// POST /api/promocodes
func (ctl *PromoCodeController) Create(c *gin.Context) {
	var req PromoCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pc := entity.PromoCode{
		Code:           req.Code,
		DiscountAmount: *req.DiscountAmount,
		Active:         req.Active,
	}
	if err := ctl.DB.Create(&pc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			resp.Conflict(c, "Promo code already exists")
			return
		}
		log.Error().Err(err).Msg("create promo code")
		resp.ServerError(c)
		return
	}

	// reload so the database default for active shows up
	if err := ctl.DB.First(&pc, pc.ID).Error; err != nil {
		log.Error().Err(err).Msg("reload promo code")
		resp.ServerError(c)
		return
	}
	resp.Created(c, pc)
}

// PUT /api/promocodes/:id
func (ctl *PromoCodeController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req PromoCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{
		"code":            req.Code,
		"discount_amount": *req.DiscountAmount,
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	res := ctl.DB.Model(&entity.PromoCode{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			resp.Conflict(c, "Promo code already exists")
			return
		}
		log.Error().Err(res.Error).Msg("update promo code")
		resp.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Promo code not found")
		return
	}

	var pc entity.PromoCode
	if err := ctl.DB.First(&pc, id).Error; err != nil {
		log.Error().Err(err).Msg("reload promo code")
		resp.ServerError(c)
		return
	}
	resp.OK(c, pc)
}

// DELETE /api/promocodes/:id
func (ctl *PromoCodeController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := ctl.DB.Delete(&entity.PromoCode{}, id)
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("delete promo code")
		resp.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Promo code not found")
		return
	}
	resp.NoContent(c)
}
