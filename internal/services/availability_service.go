package services

import (
	"time"

	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AvailabilityService interface {
	ListForCleaner(db *gorm.DB, cleanerID string) ([]models.AvailabilitySlot, error)
	AddSlots(db *gorm.DB, cleanerID, date string, services []string) ([]models.AvailabilitySlot, error)
	DeleteSlot(db *gorm.DB, cleanerID, slotID string) error
}

type availabilityService struct {
	availabilityRepo repositories.AvailabilityRepository
}

func NewAvailabilityService(availabilityRepo repositories.AvailabilityRepository) AvailabilityService {
	return &availabilityService{availabilityRepo: availabilityRepo}
}

func (s *availabilityService) ListForCleaner(db *gorm.DB, cleanerID string) ([]models.AvailabilitySlot, error) {
	slots, err := s.availabilityRepo.ListForCleaner(db, cleanerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "fetch", "availability_slots")
	}
	return slots, nil
}

func (s *availabilityService) AddSlots(db *gorm.DB, cleanerID, date string, services []string) ([]models.AvailabilitySlot, error) {
	if len(services) == 0 || date == "" {
		return nil, apperrors.NewBadRequestError("Service(s) and date are required to save availability")
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Date must be formatted as YYYY-MM-DD")
	}

	slots := make([]models.AvailabilitySlot, 0, len(services))
	for _, service := range services {
		slots = append(slots, models.AvailabilitySlot{
			CleanerID: cleanerID,
			Service:   service,
			Date:      day,
		})
	}
	if err := s.availabilityRepo.CreateBatch(db, slots); err != nil {
		return nil, apperrors.DatabaseError(err, "insert", "availability_slots")
	}
	return slots, nil
}

// DeleteSlot keeps the cleaner id inside the delete predicate, so a
// foreign slot id removes nothing.
func (s *availabilityService) DeleteSlot(db *gorm.DB, cleanerID, slotID string) error {
	rows, err := s.availabilityRepo.DeleteOwned(db, slotID, cleanerID)
	if err != nil {
		return apperrors.DatabaseError(err, "delete", "availability_slots")
	}
	if rows == 0 {
		return apperrors.ErrNotOwner
	}
	return nil
}
