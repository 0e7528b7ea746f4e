package models

import "time"

// AvailabilitySlot is one service offered by a cleaner on a date.
type AvailabilitySlot struct {
	BaseModel
	CleanerID string    `gorm:"type:uuid;not null;index" json:"cleaner_id"`
	Service   string    `gorm:"not null" json:"service"`
	Date      time.Time `gorm:"not null" json:"date"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}
