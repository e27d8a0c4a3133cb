// controllers/sandwich_controller.go
package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SandwichController struct {
	Service *services.SandwichService
}

func NewSandwichController(s *services.SandwichService) *SandwichController {
	return &SandwichController{Service: s}
}

// GET /api/sandwiches
func (ctl *SandwichController) List(c *gin.Context) {
	views, err := ctl.Service.List()
	if err != nil {
		log.Error().Err(err).Msg("list sandwiches")
		resp.ServerError(c)
		return
	}
	resp.OK(c, views)
}

// GET /api/sandwiches/:id
func (ctl *SandwichController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	v, err := ctl.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Sandwich not found")
			return
		}
		log.Error().Err(err).Msg("get sandwich")
		resp.ServerError(c)
		return
	}
	resp.OK(c, v)
}

// POST /api/sandwiches
func (ctl *SandwichController) Create(c *gin.Context) {
	var in services.SandwichInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v, err := ctl.Service.Create(&in)
	if err != nil {
		log.Error().Err(err).Msg("create sandwich")
		resp.ServerError(c)
		return
	}
	resp.Created(c, v)
}

// PUT /api/sandwiches/:id → full replace, ingredient set included when present
func (ctl *SandwichController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.SandwichInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v, err := ctl.Service.Update(uint(id), &in)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Sandwich not found")
			return
		}
		log.Error().Err(err).Msg("update sandwich")
		resp.ServerError(c)
		return
	}
	resp.OK(c, v)
}

// DELETE /api/sandwiches/:id
func (ctl *SandwichController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctl.Service.Delete(uint(id))
	switch {
	case err == nil:
		resp.NoContent(c)
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "Sandwich not found")
	case errors.Is(err, services.ErrSandwichInUse):
		resp.Conflict(c, "Sandwich is referenced by existing orders")
	default:
		log.Error().Err(err).Msg("delete sandwich")
		resp.ServerError(c)
	}
}
