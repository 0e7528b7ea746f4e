package models

import "time"

// CleanerView is an append-only profile view event. Repeat views by the
// same viewer are deliberately not deduplicated.
type CleanerView struct {
	BaseModel
	CleanerID string    `gorm:"type:uuid;not null;index" json:"cleaner_id"`
	ViewerID  string    `gorm:"type:uuid;not null" json:"viewer_id"`
	ViewedAt  time.Time `gorm:"not null" json:"viewed_at"`
}

func (CleanerView) TableName() string {
	return "cleaner_views"
}
