package handlers

import (
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves the public cleaner search. No actor required.
type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/listings", h.SearchCleaners)
}

func (h *ListingHandler) SearchCleaners(c *gin.Context) {
	var req dto.ListCleanersRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.listingService.SearchCleaners(h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, resp)
}
