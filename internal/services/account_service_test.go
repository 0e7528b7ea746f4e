package services_test

import (
	"testing"

	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupCleanerStartsPending(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()

	account, err := svc.Signup(db, &dto.SignupRequest{
		Name:        "maria",
		Email:       "maria@example.com",
		Password:    "supersecret",
		AccountType: "cleaner",
	})

	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusPending, account.Status)
	assert.Equal(t, models.AccountTypeCleaner, account.AccountType)
}

func TestSignupHomeownerStartsActive(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()

	account, err := svc.Signup(db, &dto.SignupRequest{
		Name:        "harry",
		Email:       "harry@example.com",
		Password:    "supersecret",
		AccountType: "homeowner",
	})

	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, account.Status)
}

func TestSignupHashesPassword(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()

	account, err := svc.Signup(db, &dto.SignupRequest{
		Name:        "pete",
		Email:       "pete@example.com",
		Password:    "supersecret",
		AccountType: "homeowner",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("supersecret")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()

	req := &dto.SignupRequest{
		Name:        "maria",
		Email:       "maria@example.com",
		Password:    "supersecret",
		AccountType: "homeowner",
	}
	_, err := svc.Signup(db, req)
	require.NoError(t, err)

	_, err = svc.Signup(db, req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeAlreadyExists))
}

func TestGetAccountNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()

	_, err := svc.GetAccount(db, uuid.NewString())

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestUpdateProfileChangesOnlyGivenFields(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	account := createAccount(t, db, "maria", accountOpts{Bio: "old bio", Rates: floatPtr(20)})

	newBio := "new bio"
	services := []string{"windows", "deep cleaning"}
	updated, err := svc.UpdateProfile(db, account.ID, &dto.UpdateProfileRequest{
		Bio:             &newBio,
		ServicesOffered: &services,
	})

	require.NoError(t, err)
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "maria", updated.Name)
	require.NotNil(t, updated.Rates)
	assert.EqualValues(t, 20, *updated.Rates)
	assert.ElementsMatch(t, services, updated.Services())
}

func TestUpdateProfileNoFields(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	account := createAccount(t, db, "maria", accountOpts{})

	_, err := svc.UpdateProfile(db, account.ID, &dto.UpdateProfileRequest{})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
}

func TestUpdateProfileUnknownAccount(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()

	name := "ghost"
	_, err := svc.UpdateProfile(db, uuid.NewString(), &dto.UpdateProfileRequest{Name: &name})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestListPendingCleaners(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()

	createAccount(t, db, "pending-1", accountOpts{Status: models.AccountStatusPending})
	createAccount(t, db, "pending-2", accountOpts{Status: models.AccountStatusPending})
	createAccount(t, db, "active", accountOpts{})
	createAccount(t, db, "homeowner", accountOpts{Type: models.AccountTypeHomeowner, Status: models.AccountStatusPending})

	resp, err := svc.ListPendingCleaners(db, 1, 10)
	require.NoError(t, err)

	assert.EqualValues(t, 2, resp.Total)
}

func TestSetCleanerStatusRequiresAdmin(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	homeowner := createAccount(t, db, "harry", accountOpts{Type: models.AccountTypeHomeowner})
	cleaner := createAccount(t, db, "maria", accountOpts{Status: models.AccountStatusPending})

	err := svc.SetCleanerStatus(db, homeowner.ID, cleaner.ID, models.AccountStatusActive)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))
}

func TestSetCleanerStatusApprovesPendingCleaner(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	admin := createAccount(t, db, "admin", accountOpts{Type: models.AccountTypeAdmin})
	cleaner := createAccount(t, db, "maria", accountOpts{Status: models.AccountStatusPending})

	require.NoError(t, svc.SetCleanerStatus(db, admin.ID, cleaner.ID, models.AccountStatusActive))

	reloaded, err := svc.GetAccount(db, cleaner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, reloaded.Status)
}

func TestSetCleanerStatusRejectsBadStatus(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	admin := createAccount(t, db, "admin", accountOpts{Type: models.AccountTypeAdmin})
	cleaner := createAccount(t, db, "maria", accountOpts{Status: models.AccountStatusPending})

	err := svc.SetCleanerStatus(db, admin.ID, cleaner.ID, models.AccountStatusPending)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidStatus))
}

func TestSetCleanerStatusOnlyTargetsCleaners(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	admin := createAccount(t, db, "admin", accountOpts{Type: models.AccountTypeAdmin})
	homeowner := createAccount(t, db, "harry", accountOpts{Type: models.AccountTypeHomeowner})

	err := svc.SetCleanerStatus(db, admin.ID, homeowner.ID, models.AccountStatusActive)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidOperation))
}

func TestDeleteAccountRequiresAdmin(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	cleaner := createAccount(t, db, "maria", accountOpts{})
	target := createAccount(t, db, "victim", accountOpts{})

	err := svc.DeleteAccount(db, cleaner.ID, target.ID)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))
}

func TestDeleteAccountRemovesRow(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	admin := createAccount(t, db, "admin", accountOpts{Type: models.AccountTypeAdmin})
	target := createAccount(t, db, "maria", accountOpts{})

	require.NoError(t, svc.DeleteAccount(db, admin.ID, target.ID))

	_, err := svc.GetAccount(db, target.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestDeleteAccountUnknownTarget(t *testing.T) {
	db := openTestDB(t)
	svc := newAccountService()
	admin := createAccount(t, db, "admin", accountOpts{Type: models.AccountTypeAdmin})

	err := svc.DeleteAccount(db, admin.ID, uuid.NewString())

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}
