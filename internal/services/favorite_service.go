package services

import (
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FavoriteService interface {
	// SaveFavorite drives the (cleaner, user) pair to the wanted end
	// state. Idempotent by construction: the store is only touched when
	// the current state differs from want.
	SaveFavorite(db *gorm.DB, cleanerID, userID string, want bool) error

	GetFavorites(db *gorm.DB, userID string) ([]string, error)
	IsFavorite(db *gorm.DB, cleanerID, userID string) (bool, error)

	RecordView(db *gorm.DB, cleanerID, viewerID string) error

	FavoriteCount(db *gorm.DB, cleanerID string) (int64, error)
	ViewCount(db *gorm.DB, cleanerID string) (int64, error)
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	viewRepo     repositories.ViewRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	viewRepo repositories.ViewRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		viewRepo:     viewRepo,
	}
}

func (s *favoriteService) SaveFavorite(db *gorm.DB, cleanerID, userID string, want bool) error {
	if cleanerID == "" || userID == "" {
		return apperrors.NewBadRequestError("cleaner id and user id are required")
	}

	exists, err := s.favoriteRepo.Exists(db, cleanerID, userID)
	if err != nil {
		return apperrors.DatabaseError(err, "fetch", "favorites")
	}

	switch {
	case want && !exists:
		if err := s.favoriteRepo.Create(db, cleanerID, userID); err != nil {
			return apperrors.DatabaseError(err, "insert", "favorites")
		}
	case !want && exists:
		if _, err := s.favoriteRepo.DeletePair(db, cleanerID, userID); err != nil {
			return apperrors.DatabaseError(err, "delete", "favorites")
		}
	}
	// Already in the wanted state: no store write.
	return nil
}

func (s *favoriteService) GetFavorites(db *gorm.DB, userID string) ([]string, error) {
	ids, err := s.favoriteRepo.ListCleanerIDs(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "fetch", "favorites")
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *favoriteService) IsFavorite(db *gorm.DB, cleanerID, userID string) (bool, error) {
	exists, err := s.favoriteRepo.Exists(db, cleanerID, userID)
	if err != nil {
		return false, apperrors.DatabaseError(err, "fetch", "favorites")
	}
	return exists, nil
}

func (s *favoriteService) RecordView(db *gorm.DB, cleanerID, viewerID string) error {
	if cleanerID == "" || viewerID == "" {
		return apperrors.NewBadRequestError("cleaner id and viewer id are required")
	}
	if err := s.viewRepo.Create(db, cleanerID, viewerID); err != nil {
		return apperrors.DatabaseError(err, "insert", "cleaner_views")
	}
	return nil
}

func (s *favoriteService) FavoriteCount(db *gorm.DB, cleanerID string) (int64, error) {
	count, err := s.favoriteRepo.CountForCleaner(db, cleanerID)
	if err != nil {
		return 0, apperrors.DatabaseError(err, "count", "favorites")
	}
	return count, nil
}

func (s *favoriteService) ViewCount(db *gorm.DB, cleanerID string) (int64, error) {
	count, err := s.viewRepo.CountForCleaner(db, cleanerID)
	if err != nil {
		return 0, apperrors.DatabaseError(err, "count", "cleaner_views")
	}
	return count, nil
}
