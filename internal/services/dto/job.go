package dto

import "time"

type CreateBookingRequest struct {
	CleanerID string    `json:"cleaner_id" binding:"required"`
	Service   string    `json:"service" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"is-job-status"`

	// Confirm must be set for cancellations; the boundary collects the
	// explicit confirmation.
	Confirm bool `json:"confirm"`
}

type ReportJobRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CompletedJobsRequest filters the completed-work history view.
type CompletedJobsRequest struct {
	Service   string     `form:"service"`
	DateFrom  *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo    *time.Time `form:"date_to" time_format:"2006-01-02"`
	SortOrder string     `form:"sort_order"`
}

// CleanerStats is the dashboard summary for one cleaner.
type CleanerStats struct {
	FavoriteCount     int64 `json:"favorite_count"`
	ViewCount         int64 `json:"view_count"`
	CompletedJobCount int64 `json:"completed_job_count"`
}
