package repositories

import (
	"time"

	"cleanmatch_backend/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Exists(db *gorm.DB, cleanerID, userID string) (bool, error)
	Create(db *gorm.DB, cleanerID, userID string) error
	DeletePair(db *gorm.DB, cleanerID, userID string) (int64, error)
	ListCleanerIDs(db *gorm.DB, userID string) ([]string, error)
	CountForCleaner(db *gorm.DB, cleanerID string) (int64, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) Exists(db *gorm.DB, cleanerID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("cleaner_id = ? AND user_id = ?", cleanerID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) Create(db *gorm.DB, cleanerID, userID string) error {
	return db.Create(&models.Favorite{CleanerID: cleanerID, UserID: userID}).Error
}

func (r *FavoriteRepositoryImpl) DeletePair(db *gorm.DB, cleanerID, userID string) (int64, error) {
	res := db.Where("cleaner_id = ? AND user_id = ?", cleanerID, userID).
		Delete(&models.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *FavoriteRepositoryImpl) ListCleanerIDs(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("cleaner_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FavoriteRepositoryImpl) CountForCleaner(db *gorm.DB, cleanerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("cleaner_id = ?", cleanerID).
		Count(&count).Error
	return count, err
}

type ViewRepository interface {
	Create(db *gorm.DB, cleanerID, viewerID string) error
	CountForCleaner(db *gorm.DB, cleanerID string) (int64, error)
}

type ViewRepositoryImpl struct{}

func NewViewRepository() ViewRepository {
	return &ViewRepositoryImpl{}
}

// Create appends unconditionally; every call produces a new row.
func (r *ViewRepositoryImpl) Create(db *gorm.DB, cleanerID, viewerID string) error {
	return db.Create(&models.CleanerView{
		CleanerID: cleanerID,
		ViewerID:  viewerID,
		ViewedAt:  time.Now().UTC(),
	}).Error
}

func (r *ViewRepositoryImpl) CountForCleaner(db *gorm.DB, cleanerID string) (int64, error) {
	var count int64
	err := db.Model(&models.CleanerView{}).
		Where("cleaner_id = ?", cleanerID).
		Count(&count).Error
	return count, err
}
