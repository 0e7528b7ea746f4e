package models

// Favorite marks a cleaner as saved by a user. The pair is unique, which
// makes the toggle idempotent at the store level too.
type Favorite struct {
	BaseModel
	CleanerID string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_pair" json:"cleaner_id"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_pair;index" json:"user_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}
