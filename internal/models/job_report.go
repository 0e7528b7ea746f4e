package models

import "time"

// JobReport is an incident report attached to a job. Appending a report
// never changes the job's status.
type JobReport struct {
	BaseModel
	JobID      string    `gorm:"type:uuid;not null;index" json:"job_id"`
	ReporterID string    `gorm:"type:uuid;not null" json:"reporter_id"`
	Reason     string    `gorm:"not null" json:"reason"`
	ReportedAt time.Time `gorm:"not null" json:"reported_at"`
}

func (JobReport) TableName() string {
	return "job_reports"
}
