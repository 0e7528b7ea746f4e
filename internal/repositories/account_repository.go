package repositories

import (
	"errors"

	"cleanmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrNothingToUpdate    = errors.New("no account fields to update")
)

type AccountRepository interface {
	Create(db *gorm.DB, account *models.Account) error
	FindByID(db *gorm.DB, id string) (*models.Account, error)
	FindByEmail(db *gorm.DB, email string) (*models.Account, error)
	UpdateFields(db *gorm.DB, id string, values map[string]any) (int64, error)
	Delete(db *gorm.DB, id string) (int64, error)
}

type AccountRepositoryImpl struct{}

func NewAccountRepository() AccountRepository {
	return &AccountRepositoryImpl{}
}

func (r *AccountRepositoryImpl) Create(db *gorm.DB, account *models.Account) error {
	var existing models.Account
	err := db.Where("email = ?", account.Email).First(&existing).Error
	if err == nil {
		return ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(account).Error
}

func (r *AccountRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Account, error) {
	var account models.Account
	if err := db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Account, error) {
	var account models.Account
	if err := db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) UpdateFields(db *gorm.DB, id string, values map[string]any) (int64, error) {
	if len(values) == 0 {
		return 0, ErrNothingToUpdate
	}
	res := db.Model(&models.Account{}).Where("id = ?", id).Updates(values)
	return res.RowsAffected, res.Error
}

func (r *AccountRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	res := db.Where("id = ?", id).Delete(&models.Account{})
	return res.RowsAffected, res.Error
}
