package repositories

import (
	"cleanmatch_backend/internal/models"

	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	ListForCleaner(db *gorm.DB, cleanerID string) ([]models.AvailabilitySlot, error)
	CreateBatch(db *gorm.DB, slots []models.AvailabilitySlot) error

	// DeleteOwned scopes the delete by cleaner id so a cleaner can only
	// remove their own slots.
	DeleteOwned(db *gorm.DB, slotID, cleanerID string) (int64, error)
}

type AvailabilityRepositoryImpl struct{}

func NewAvailabilityRepository() AvailabilityRepository {
	return &AvailabilityRepositoryImpl{}
}

func (r *AvailabilityRepositoryImpl) ListForCleaner(db *gorm.DB, cleanerID string) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := db.Where("cleaner_id = ?", cleanerID).Order("date ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *AvailabilityRepositoryImpl) CreateBatch(db *gorm.DB, slots []models.AvailabilitySlot) error {
	return db.Create(&slots).Error
}

func (r *AvailabilityRepositoryImpl) DeleteOwned(db *gorm.DB, slotID, cleanerID string) (int64, error) {
	res := db.Where("id = ? AND cleaner_id = ?", slotID, cleanerID).
		Delete(&models.AvailabilitySlot{})
	return res.RowsAffected, res.Error
}
