package models

import "time"

// Job is a booking between a homeowner and a cleaner. Jobs are created
// with status Pending, mutated only through the lifecycle service and
// never deleted.
type Job struct {
	BaseModel
	CleanerID   string    `gorm:"type:uuid;not null;index" json:"cleaner_id"`
	HomeownerID string    `gorm:"type:uuid;not null;index" json:"homeowner_id"`
	Service     string    `gorm:"not null" json:"service"`
	Location    string    `gorm:"not null" json:"location"`
	Date        time.Time `gorm:"not null" json:"date"`
	Status      JobStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	// Rating is set post-completion by the external rating flow.
	Rating *float64 `json:"rating,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}
