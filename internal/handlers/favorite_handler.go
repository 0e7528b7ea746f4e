package handlers

import (
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler covers favorites, profile views and the cleaner
// dashboard stats composed from them.
type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
	jobService      services.JobService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService, jobService services.JobService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
		jobService:      jobService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.RouterGroup) {
	favorites := r.Group("/favorites")
	{
		favorites.PUT("/:cleaner_id", h.SaveFavorite)
		favorites.GET("", h.GetFavorites)
		favorites.GET("/:cleaner_id", h.IsFavorite)
	}

	r.POST("/views/:cleaner_id", h.RecordView)
	r.GET("/cleaners/:id/stats", h.CleanerStats)
}

func (h *FavoriteHandler) SaveFavorite(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.SaveFavoriteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.favoriteService.SaveFavorite(h.GetDB(c), c.Param("cleaner_id"), actorID, req.Want); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"favorited": req.Want})
}

func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	ids, err := h.favoriteService.GetFavorites(h.GetDB(c), actorID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, ids)
}

func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	favorited, err := h.favoriteService.IsFavorite(h.GetDB(c), c.Param("cleaner_id"), actorID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"favorited": favorited})
}

func (h *FavoriteHandler) RecordView(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	if err := h.favoriteService.RecordView(h.GetDB(c), c.Param("cleaner_id"), actorID); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"viewed": true})
}

// CleanerStats aggregates the dashboard counters for one cleaner.
func (h *FavoriteHandler) CleanerStats(c *gin.Context) {
	db := h.GetDB(c)
	cleanerID := c.Param("id")

	favorites, err := h.favoriteService.FavoriteCount(db, cleanerID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	views, err := h.favoriteService.ViewCount(db, cleanerID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	completed, err := h.jobService.CompletedJobCount(db, cleanerID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, dto.CleanerStats{
		FavoriteCount:     favorites,
		ViewCount:         views,
		CompletedJobCount: completed,
	})
}
