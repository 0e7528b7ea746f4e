package validator

import (
	"log"

	"cleanmatch_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain enum rules backed by
// models/statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// The app must not start with a broken rule set.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-account-type", validateAccountType)
	mustRegister("is-account-status", validateAccountStatus)
	mustRegister("is-job-status", validateJobStatus)
}

func validateAccountType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' covers empties
	}
	switch models.AccountType(value) {
	case models.AccountTypeHomeowner, models.AccountTypeCleaner, models.AccountTypeAdmin:
		return true
	default:
		return false
	}
}

func validateAccountStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.AccountStatus(value) {
	case models.AccountStatusPending, models.AccountStatusActive, models.AccountStatusRejected:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.JobStatus(value).Valid()
}
