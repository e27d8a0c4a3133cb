// controllers/review_controller.go
package controllers

import (
	"errors"
	"strconv"
	"time"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ReviewController struct{ DB *gorm.DB }

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// ===== DTO =====

type CreateReviewReq struct {
	CustomerID uint   `json:"customerId" binding:"required"`
	SandwichID uint   `json:"sandwichId" binding:"required"`
	Rating     *int   `json:"rating" binding:"required,gte=0,lte=5"`
	Comment    string `json:"comment"`
}

type ReviewStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// ReviewView is a review joined with display names; one row per review, no
// aggregation step needed.
type ReviewView struct {
	ID           uint      `json:"id"`
	CustomerID   uint      `json:"customer_id"`
	SandwichID   uint      `json:"sandwich_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Status       string    `json:"status"`
	ReviewDate   time.Time `json:"date"`
	CustomerName string    `json:"customer_name"`
	SandwichName string    `json:"sandwich_name"`
}

func (ctl *ReviewController) composed() *gorm.DB {
	return ctl.DB.Table("reviews r").
		Select("r.id, r.customer_id, r.sandwich_id, r.rating, r.comment, r.status, r.review_date, c.name AS customer_name, s.name AS sandwich_name").
		Joins("LEFT JOIN customers c ON c.id = r.customer_id").
		Joins("LEFT JOIN sandwiches s ON s.id = r.sandwich_id")
}

func (ctl *ReviewController) fetchOne(id uint) (*ReviewView, error) {
	var v ReviewView
	res := ctl.composed().Where("r.id = ?", id).Limit(1).Scan(&v)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

// ===== Handlers =====

// GET /api/reviews
func (ctl *ReviewController) List(c *gin.Context) {
	views := make([]ReviewView, 0)
	if err := ctl.composed().Order("r.id").Scan(&views).Error; err != nil {
		log.Error().Err(err).Msg("list reviews")
		resp.ServerError(c)
		return
	}
	resp.OK(c, views)
}

// GET /api/reviews/:id
func (ctl *ReviewController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	v, err := ctl.fetchOne(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Review not found")
			return
		}
		log.Error().Err(err).Msg("get review")
		resp.ServerError(c)
		return
	}
	resp.OK(c, v)
}

// POST /api/reviews
func (ctl *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev := entity.Review{
		CustomerID: req.CustomerID,
		SandwichID: req.SandwichID,
		Rating:     *req.Rating,
		Comment:    req.Comment,
		Status:     entity.ReviewStatusPending,
		ReviewDate: time.Now(),
	}
	if err := ctl.DB.Create(&rev).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			resp.BadRequest(c, "Customer or sandwich not found")
			return
		}
		log.Error().Err(err).Msg("create review")
		resp.ServerError(c)
		return
	}

	v, err := ctl.fetchOne(rev.ID)
	if err != nil {
		log.Error().Err(err).Msg("reload review")
		resp.ServerError(c)
		return
	}
	resp.Created(c, v)
}

// PUT /api/reviews/:id
func (ctl *ReviewController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ctl.DB.Model(&entity.Review{}).Where("id = ?", id).Updates(map[string]any{
		"customer_id": req.CustomerID,
		"sandwich_id": req.SandwichID,
		"rating":      *req.Rating,
		"comment":     req.Comment,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			resp.BadRequest(c, "Customer or sandwich not found")
			return
		}
		log.Error().Err(res.Error).Msg("update review")
		resp.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Review not found")
		return
	}

	v, err := ctl.fetchOne(uint(id))
	if err != nil {
		log.Error().Err(err).Msg("reload review")
		resp.ServerError(c)
		return
	}
	resp.OK(c, v)
}

// PATCH /api/reviews/:id/status
func (ctl *ReviewController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ReviewStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ctl.DB.Model(&entity.Review{}).Where("id = ?", id).Update("status", req.Status)
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("update review status")
		resp.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Review not found")
		return
	}

	v, err := ctl.fetchOne(uint(id))
	if err != nil {
		log.Error().Err(err).Msg("reload review")
		resp.ServerError(c)
		return
	}
	resp.OK(c, v)
}

// DELETE /api/reviews/:id
func (ctl *ReviewController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := ctl.DB.Delete(&entity.Review{}, id)
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("delete review")
		resp.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Review not found")
		return
	}
	resp.NoContent(c)
}
