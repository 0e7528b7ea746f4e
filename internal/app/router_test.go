package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cleanmatch_backend/internal/app"
	"cleanmatch_backend/internal/config"
	"cleanmatch_backend/internal/middleware"
	"cleanmatch_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, app.Migrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Listing.DefaultPageSize = 6
	cfg.Listing.MaxPageSize = 100

	return app.SetupRouter(cfg, db), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, actorID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.Header.Set(middleware.ActorHeader, actorID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedActiveCleaner(t *testing.T, db *gorm.DB, name string) *models.Account {
	t.Helper()
	account := &models.Account{
		Name:            name,
		Email:           name + "@example.com",
		PasswordHash:    "x",
		AccountType:     models.AccountTypeCleaner,
		Status:          models.AccountStatusActive,
		ServicesOffered: models.FormatServices([]string{"windows"}),
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupAndFetchAccount(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/accounts", "", gin.H{
		"name":         "maria",
		"email":        "maria@example.com",
		"password":     "supersecret",
		"account_type": "cleaner",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.AccountStatusPending, created.Data.Status)

	w = doJSON(t, router, http.MethodGet, "/api/v1/accounts/"+created.Data.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	// The password hash never leaves the service.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestSignupValidation(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/accounts", "", gin.H{
		"name":         "maria",
		"email":        "not-an-email",
		"password":     "short",
		"account_type": "wizard",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	router, db := newTestServer(t)
	cleaner := seedActiveCleaner(t, db, "maria")
	homeownerID := uuid.NewString()

	w := doJSON(t, router, http.MethodPost, "/api/v1/bookings", homeownerID, gin.H{
		"cleaner_id": cleaner.ID,
		"service":    "windows",
		"location":   "Springfield",
		"date":       "2026-09-15T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Job `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	jobID := created.Data.ID

	// A stranger cannot approve.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/jobs/"+jobID+"/status", uuid.NewString(), gin.H{
		"status": "Approved",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The owning cleaner approves.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/jobs/"+jobID+"/status", cleaner.ID, gin.H{
		"status": "Approved",
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// Skipping the transition table is rejected with a conflict.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/jobs/"+jobID+"/status", cleaner.ID, gin.H{
		"status": "Approved",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Cancellation demands explicit confirmation.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/jobs/"+jobID+"/status", cleaner.ID, gin.H{
		"status": "Cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The homeowner marks the work done.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/jobs/"+jobID+"/status", homeownerID, gin.H{
		"status": "Completed",
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", jobID).Error)
	assert.Equal(t, models.JobStatusCompleted, stored.Status)
}

func TestBookingRequiresActorHeader(t *testing.T) {
	router, db := newTestServer(t)
	cleaner := seedActiveCleaner(t, db, "maria")

	w := doJSON(t, router, http.MethodPost, "/api/v1/bookings", "", gin.H{
		"cleaner_id": cleaner.ID,
		"service":    "windows",
		"location":   "Springfield",
		"date":       "2026-09-15T09:00:00Z",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListingsArePublic(t *testing.T) {
	router, db := newTestServer(t)
	seedActiveCleaner(t, db, "maria")

	w := doJSON(t, router, http.MethodGet, "/api/v1/listings?search_term=maria", "", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "maria's Cleaning Services")
}

func TestFavoriteToggleOverHTTP(t *testing.T) {
	router, db := newTestServer(t)
	cleaner := seedActiveCleaner(t, db, "maria")
	userID := uuid.NewString()

	w := doJSON(t, router, http.MethodPut, "/api/v1/favorites/"+cleaner.ID, userID, gin.H{"want": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/favorites", userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), cleaner.ID)

	w = doJSON(t, router, http.MethodPut, "/api/v1/favorites/"+cleaner.ID, userID, gin.H{"want": false})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCleanerStatsEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	cleaner := seedActiveCleaner(t, db, "maria")
	userID := uuid.NewString()

	doJSON(t, router, http.MethodPut, "/api/v1/favorites/"+cleaner.ID, userID, gin.H{"want": true})
	doJSON(t, router, http.MethodPost, "/api/v1/views/"+cleaner.ID, userID, nil)
	doJSON(t, router, http.MethodPost, "/api/v1/views/"+cleaner.ID, userID, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/cleaners/"+cleaner.ID+"/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			FavoriteCount     int64 `json:"favorite_count"`
			ViewCount         int64 `json:"view_count"`
			CompletedJobCount int64 `json:"completed_job_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Data.FavoriteCount)
	assert.EqualValues(t, 2, resp.Data.ViewCount)
	assert.Zero(t, resp.Data.CompletedJobCount)
}

func TestRecordSearchEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	seedActiveCleaner(t, db, "maria")
	adminID := uuid.NewString()

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/records/accounts/search", adminID, gin.H{
		"filters": []gin.H{
			{"column": "account_type", "operator": "eq", "value": "cleaner"},
		},
		"page":      1,
		"page_size": 10,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "maria")

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/records/accounts/search", adminID, gin.H{
		"filters": []gin.H{
			{"column": "password_hash", "operator": "eq", "value": "x"},
		},
		"page":      1,
		"page_size": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
