package handlers

import (
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	*BaseHandler
	availabilityService services.AvailabilityService
}

func NewAvailabilityHandler(base *BaseHandler, availabilityService services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		BaseHandler:         base,
		availabilityService: availabilityService,
	}
}

func (h *AvailabilityHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/cleaners/:id/availability", h.ListForCleaner)

	availability := r.Group("/availability")
	{
		availability.POST("", h.AddSlots)
		availability.DELETE("/:id", h.DeleteSlot)
	}
}

func (h *AvailabilityHandler) ListForCleaner(c *gin.Context) {
	slots, err := h.availabilityService.ListForCleaner(h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, slots)
}

func (h *AvailabilityHandler) AddSlots(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.AddSlotsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	slots, err := h.availabilityService.AddSlots(h.GetDB(c), actorID, req.Date, req.Services)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.Created(c, slots)
}

func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	if err := h.availabilityService.DeleteSlot(h.GetDB(c), actorID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
