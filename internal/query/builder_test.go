package query_test

import (
	"fmt"
	"testing"

	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var accountSchema = query.NewSchema("accounts",
	"id", "name", "email", "bio", "rates", "services_offered",
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Account{}))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, name, bio string, rates float64, services []string) *models.Account {
	t.Helper()
	account := &models.Account{
		Name:            name,
		Email:           name + "@example.com",
		PasswordHash:    "x",
		AccountType:     models.AccountTypeCleaner,
		Status:          models.AccountStatusActive,
		Rates:           &rates,
		Bio:             bio,
		ServicesOffered: models.FormatServices(services),
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestApplyRejectsUnknownOperator(t *testing.T) {
	db := openTestDB(t)

	_, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "name", Op: "drop", Value: "x"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrUnknownOperator)
}

func TestApplyRejectsUnknownColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "password_hash", Op: query.OpEq, Value: "x"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrUnknownColumn)
}

func TestApplyRejectsInjectionShapedColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "name; DROP TABLE accounts", Op: query.OpEq, Value: "x"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrUnknownColumn)
}

func TestApplyEqFilter(t *testing.T) {
	db := openTestDB(t)
	seedAccount(t, db, "alice", "", 20, nil)
	seedAccount(t, db, "bob", "", 30, nil)

	tx, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "name", Op: query.OpEq, Value: "alice"},
	})
	require.NoError(t, err)

	var got []models.Account
	require.NoError(t, tx.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Name)
}

func TestApplyRangeFilters(t *testing.T) {
	db := openTestDB(t)
	seedAccount(t, db, "cheap", "", 10, nil)
	seedAccount(t, db, "mid", "", 25, nil)
	seedAccount(t, db, "pricey", "", 50, nil)

	tx, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "rates", Op: query.OpGte, Value: 20},
		{Column: "rates", Op: query.OpLte, Value: 40},
	})
	require.NoError(t, err)

	var got []models.Account
	require.NoError(t, tx.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "mid", got[0].Name)
}

func TestApplyILikeEscapesWildcards(t *testing.T) {
	db := openTestDB(t)
	seedAccount(t, db, "al_pha", "", 20, nil)
	seedAccount(t, db, "alxpha", "", 20, nil)

	// The underscore must match literally, not as a single-char wildcard.
	tx, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "name", Op: query.OpILike, Value: "al_p"},
	})
	require.NoError(t, err)

	var got []models.Account
	require.NoError(t, tx.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "al_pha", got[0].Name)
}

func TestApplyILikePercentLiteral(t *testing.T) {
	db := openTestDB(t)
	seedAccount(t, db, "one", "100% satisfaction", 20, nil)
	seedAccount(t, db, "two", "fully booked", 20, nil)

	tx, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "bio", Op: query.OpILike, Value: "100%"},
	})
	require.NoError(t, err)

	var got []models.Account
	require.NoError(t, tx.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "one", got[0].Name)
}

func TestApplyContainsMatchesWholeElement(t *testing.T) {
	db := openTestDB(t)
	seedAccount(t, db, "deepclean", "", 20, []string{"deep cleaning", "windows"})
	seedAccount(t, db, "windows-only", "", 20, []string{"windows"})

	tx, err := query.Apply(db.Model(&models.Account{}), accountSchema, []query.Filter{
		{Column: "services_offered", Op: query.OpContains, Value: "deep cleaning"},
	})
	require.NoError(t, err)

	var got []models.Account
	require.NoError(t, tx.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "deepclean", got[0].Name)
}

func TestApplySearchMatchesAnyColumn(t *testing.T) {
	db := openTestDB(t)
	seedAccount(t, db, "maria", "does windows", 20, nil)
	seedAccount(t, db, "pete", "sparkling kitchens", 20, nil)
	seedAccount(t, db, "kitchen-kate", "anything", 20, nil)

	tx, err := query.ApplySearch(db.Model(&models.Account{}), accountSchema, &query.TextSearch{
		Columns: []string{"name", "bio"},
		Term:    "kitchen",
	})
	require.NoError(t, err)

	var got []models.Account
	require.NoError(t, tx.Find(&got).Error)
	assert.Len(t, got, 2)
}

func TestApplySearchRejectsUnknownColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := query.ApplySearch(db.Model(&models.Account{}), accountSchema, &query.TextSearch{
		Columns: []string{"password_hash"},
		Term:    "x",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrUnknownColumn)
}

func TestApplySearchNilIsNoop(t *testing.T) {
	db := openTestDB(t)
	seedAccount(t, db, "solo", "", 20, nil)

	tx, err := query.ApplySearch(db.Model(&models.Account{}), accountSchema, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, tx.Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, query.EscapeLike("100%"))
	assert.Equal(t, `a\_b`, query.EscapeLike("a_b"))
	assert.Equal(t, `c\\d`, query.EscapeLike(`c\d`))
	assert.Equal(t, "plain", query.EscapeLike("plain"))
}

func TestOperatorValid(t *testing.T) {
	for _, op := range []query.Operator{query.OpEq, query.OpNeq, query.OpGte, query.OpLte, query.OpILike, query.OpContains} {
		assert.True(t, op.Valid(), string(op))
	}
	assert.False(t, query.Operator("in").Valid())
	assert.False(t, query.Operator("").Valid())
}
