package services_test

import (
	"fmt"
	"testing"
	"time"

	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Job{},
		&models.AvailabilitySlot{},
		&models.Favorite{},
		&models.CleanerView{},
		&models.JobReport{},
	))
	return db
}

type accountOpts struct {
	Type     models.AccountType
	Status   models.AccountStatus
	Rates    *float64
	Rating   *float64
	Bio      string
	Services []string
}

func createAccount(t *testing.T, db *gorm.DB, name string, opts accountOpts) *models.Account {
	t.Helper()
	if opts.Type == "" {
		opts.Type = models.AccountTypeCleaner
	}
	if opts.Status == "" {
		opts.Status = models.AccountStatusActive
	}
	account := &models.Account{
		Name:            name,
		Email:           name + "@example.com",
		PasswordHash:    "x",
		AccountType:     opts.Type,
		Status:          opts.Status,
		Rates:           opts.Rates,
		AverageRating:   opts.Rating,
		Bio:             opts.Bio,
		ServicesOffered: models.FormatServices(opts.Services),
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func createJob(t *testing.T, db *gorm.DB, cleanerID, homeownerID string, status models.JobStatus) *models.Job {
	t.Helper()
	job := &models.Job{
		CleanerID:   cleanerID,
		HomeownerID: homeownerID,
		Service:     "deep cleaning",
		Location:    "Springfield",
		Date:        time.Now().Add(48 * time.Hour),
		Status:      status,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func floatPtr(v float64) *float64 { return &v }

func newJobService() services.JobService {
	return services.NewJobService(
		repositories.NewJobRepository(),
		repositories.NewAccountRepository(),
		repositories.NewReportRepository(),
	)
}

func newFavoriteService() services.FavoriteService {
	return services.NewFavoriteService(
		repositories.NewFavoriteRepository(),
		repositories.NewViewRepository(),
	)
}

func newAccountService() services.AccountService {
	return services.NewAccountService(repositories.NewAccountRepository())
}

func newAvailabilityService() services.AvailabilityService {
	return services.NewAvailabilityService(repositories.NewAvailabilityRepository())
}
