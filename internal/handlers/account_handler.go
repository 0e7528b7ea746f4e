package handlers

import (
	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewAccountHandler(base *BaseHandler, accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
	}
}

func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/accounts")
	{
		accounts.POST("", h.Signup)
		accounts.GET("/:id", h.GetAccount)
		accounts.PATCH("/me", h.UpdateProfile)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/cleaners/pending", h.ListPendingCleaners)
		admin.PATCH("/cleaners/:id/status", h.SetCleanerStatus)
		admin.DELETE("/accounts/:id", h.DeleteAccount)
	}
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, err := h.accountService.Signup(h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.Created(c, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountService.GetAccount(h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, account)
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, err := h.accountService.UpdateProfile(h.GetDB(c), actorID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, account)
}

func (h *AccountHandler) ListPendingCleaners(c *gin.Context) {
	if _, ok := h.RequireActor(c); !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	resp, err := h.accountService.ListPendingCleaners(h.GetDB(c), page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, resp)
}

func (h *AccountHandler) SetCleanerStatus(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.SetCleanerStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.accountService.SetCleanerStatus(h.GetDB(c), actorID, c.Param("id"), models.AccountStatus(req.Status))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(h.GetDB(c), actorID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
