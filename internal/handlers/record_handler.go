package handlers

import (
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RecordHandler exposes the generic filtered fetch over every
// registered collection. Admin tooling only.
type RecordHandler struct {
	*BaseHandler
	recordService services.RecordService
}

func NewRecordHandler(base *BaseHandler, recordService services.RecordService) *RecordHandler {
	return &RecordHandler{
		BaseHandler:   base,
		recordService: recordService,
	}
}

func (h *RecordHandler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/admin/records")
	{
		records.GET("", h.Collections)
		records.POST("/:collection/search", h.Search)
	}
}

func (h *RecordHandler) Collections(c *gin.Context) {
	if _, ok := h.RequireActor(c); !ok {
		return
	}

	h.OK(c, h.recordService.Collections())
}

func (h *RecordHandler) Search(c *gin.Context) {
	if _, ok := h.RequireActor(c); !ok {
		return
	}

	var req dto.RecordSearchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.recordService.Search(h.GetDB(c), c.Param("collection"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, resp)
}
