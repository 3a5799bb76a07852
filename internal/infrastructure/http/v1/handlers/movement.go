package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/http/v1/dto"
)

// MovementHandler handles HTTP requests for tire movements.
type MovementHandler struct {
	*BaseHandler
	service *movement.Service
}

// NewMovementHandler creates a new movement handler.
func NewMovementHandler(base *BaseHandler, service *movement.Service) *MovementHandler {
	return &MovementHandler{BaseHandler: base, service: service}
}

// List handles GET /movements
func (h *MovementHandler) List(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	filter.Limit = h.ParseIntQuery(c, "limit", 100)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)

	movements, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.MovementListResponse{
		Items:      movements,
		TotalCount: len(movements),
	})
}

// Get handles GET /movements/:id
func (h *MovementHandler) Get(c *gin.Context) {
	movementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid movement id"))
		return
	}

	m, err := h.service.Get(c.Request.Context(), movementID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, m)
}

// Record handles POST /movements
func (h *MovementHandler) Record(c *gin.Context) {
	var req dto.RecordMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	m, err := req.ToMovement()
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.Record(c.Request.Context(), m)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, created.ID.String())
}

// parseFilter parses shared period/entity query parameters.
func (h *MovementHandler) parseFilter(c *gin.Context) (movement.Filter, bool) {
	var filter movement.Filter

	if fromStr := c.Query("fromDate"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid fromDate format, expected RFC3339"))
			return filter, false
		}
		filter.FromDate = parsed
	}
	if toStr := c.Query("toDate"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid toDate format, expected RFC3339"))
			return filter, false
		}
		filter.ToDate = parsed
	}

	filter.SerialNumber = c.Query("serialNumber")
	filter.VehicleNumber = c.Query("vehicleNumber")
	if typeStr := c.Query("movementType"); typeStr != "" {
		t := movement.Type(typeStr)
		filter.Type = &t
	}

	return filter, true
}

// RegisterRoutes registers movement routes.
func (h *MovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Record)
}
