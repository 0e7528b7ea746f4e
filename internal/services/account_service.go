package services

import (
	"errors"

	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/query"
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*models.Account, error)

	// GetAccount requires exactly one match; zero rows is NOT_FOUND,
	// unlike list reads where an empty set is a normal result.
	GetAccount(db *gorm.DB, id string) (*models.Account, error)

	UpdateProfile(db *gorm.DB, actorID string, req *dto.UpdateProfileRequest) (*models.Account, error)

	ListPendingCleaners(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)
	SetCleanerStatus(db *gorm.DB, adminID, cleanerID string, status models.AccountStatus) error
	DeleteAccount(db *gorm.DB, adminID, accountID string) error
}

type accountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) Signup(db *gorm.DB, req *dto.SignupRequest) (*models.Account, error) {
	accountType := models.AccountType(req.AccountType)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	account := &models.Account{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    string(hash),
		AccountType:     accountType,
		Status:          initialStatus(accountType),
		Location:        req.Location,
		Bio:             req.Bio,
		ServicesOffered: models.FormatServices(nil),
	}

	if err := s.accountRepo.Create(db, account); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "accounts", "Email already registered")
		}
		return nil, apperrors.DatabaseError(err, "insert", "accounts")
	}
	return account, nil
}

// initialStatus: cleaners wait for admin approval, everyone else is
// active immediately.
func initialStatus(accountType models.AccountType) models.AccountStatus {
	if accountType == models.AccountTypeCleaner {
		return models.AccountStatusPending
	}
	return models.AccountStatusActive
}

func (s *accountService) GetAccount(db *gorm.DB, id string) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrNotFound(err, "accounts", "Account not found")
		}
		return nil, apperrors.DatabaseError(err, "fetch", "accounts")
	}
	return account, nil
}

func (s *accountService) UpdateProfile(db *gorm.DB, actorID string, req *dto.UpdateProfileRequest) (*models.Account, error) {
	values := map[string]any{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Bio != nil {
		values["bio"] = *req.Bio
	}
	if req.Location != nil {
		values["location"] = *req.Location
	}
	if req.Rates != nil {
		values["rates"] = *req.Rates
	}
	if req.ServicesOffered != nil {
		values["services_offered"] = models.FormatServices(*req.ServicesOffered)
	}
	if len(values) == 0 {
		return nil, apperrors.NewBadRequestError("No profile fields to update")
	}

	rows, err := s.accountRepo.UpdateFields(db, actorID, values)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "update", "accounts")
	}
	if rows == 0 {
		return nil, apperrors.ErrNotFound(repositories.ErrAccountNotFound, "accounts", "Account not found")
	}
	return s.GetAccount(db, actorID)
}

// ListPendingCleaners is the admin moderation queue, served through the
// same filtered access layer as every other listing.
func (s *accountService) ListPendingCleaners(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	result, err := repositories.FetchPage[models.Account](db, repositories.AccountSchema, repositories.FetchRequest{
		Filters: []query.Filter{
			{Column: "account_type", Op: query.OpEq, Value: models.AccountTypeCleaner},
			{Column: "status", Op: query.OpEq, Value: models.AccountStatusPending},
		},
		Order:    query.Order("created_at ASC"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(result.Data, result.TotalCount, page, pageSize), nil
}

func (s *accountService) SetCleanerStatus(db *gorm.DB, adminID, cleanerID string, status models.AccountStatus) error {
	if status != models.AccountStatusActive && status != models.AccountStatusRejected {
		return apperrors.ErrInvalidStatus("accounts", "Cleaner status must be active or rejected")
	}
	if err := s.requireAdmin(db, adminID); err != nil {
		return err
	}

	target, err := s.GetAccount(db, cleanerID)
	if err != nil {
		return err
	}
	if target.AccountType != models.AccountTypeCleaner {
		return apperrors.ErrInvalidOperation("accounts", "Only cleaner accounts are moderated")
	}

	if _, err := s.accountRepo.UpdateFields(db, cleanerID, map[string]any{"status": status}); err != nil {
		return apperrors.DatabaseError(err, "update", "accounts")
	}
	return nil
}

// DeleteAccount is the only hard-delete path and requires an admin actor.
func (s *accountService) DeleteAccount(db *gorm.DB, adminID, accountID string) error {
	if err := s.requireAdmin(db, adminID); err != nil {
		return err
	}

	rows, err := s.accountRepo.Delete(db, accountID)
	if err != nil {
		return apperrors.DatabaseError(err, "delete", "accounts")
	}
	if rows == 0 {
		return apperrors.ErrNotFound(repositories.ErrAccountNotFound, "accounts", "Account not found")
	}
	return nil
}

func (s *accountService) requireAdmin(db *gorm.DB, actorID string) error {
	actor, err := s.GetAccount(db, actorID)
	if err != nil {
		return err
	}
	if actor.AccountType != models.AccountTypeAdmin {
		return apperrors.ErrAdminOnly
	}
	return nil
}
