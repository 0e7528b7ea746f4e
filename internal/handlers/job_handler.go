package handlers

import (
	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/bookings", h.CreateBooking)

	jobs := r.Group("/jobs")
	{
		jobs.PATCH("/:id/status", h.UpdateStatus)
		jobs.POST("/:id/reports", h.ReportJob)
		jobs.GET("/cleaner", h.ListForCleaner)
		jobs.GET("/completed", h.ListCompleted)
		jobs.GET("/completed/services", h.DistinctServices)
		jobs.GET("/history", h.ListHistory)
	}
}

func (h *JobHandler) CreateBooking(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateBooking(h.GetDB(c), actorID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.Created(c, job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	newStatus := models.JobStatus(req.Status)

	// Cancellation is destructive for the other party; the client has
	// to confirm it explicitly.
	if newStatus == models.JobStatusCancelled && !req.Confirm {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Cancellation requires explicit confirmation"))
		return
	}

	if err := h.jobService.UpdateJobStatus(h.GetDB(c), c.Param("id"), actorID, newStatus); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *JobHandler) ReportJob(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.ReportJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.ReportJob(h.GetDB(c), c.Param("id"), actorID, req.Reason); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"reported": true})
}

func (h *JobHandler) ListForCleaner(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	dateAsc := c.DefaultQuery("sort_order", "asc") != "desc"

	jobs, err := h.jobService.ListBookingsForCleaner(h.GetDB(c), actorID, dateAsc)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, jobs)
}

func (h *JobHandler) ListCompleted(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	var req dto.CompletedJobsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	jobs, err := h.jobService.ListCompletedJobs(h.GetDB(c), actorID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, jobs)
}

func (h *JobHandler) DistinctServices(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	names, err := h.jobService.DistinctCompletedServices(h.GetDB(c), actorID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, names)
}

func (h *JobHandler) ListHistory(c *gin.Context) {
	actorID, ok := h.RequireActor(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListHistoryForHomeowner(h.GetDB(c), actorID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.OK(c, jobs)
}
