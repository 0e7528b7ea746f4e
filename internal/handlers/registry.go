package handlers

import (
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Account      *AccountHandler
	Job          *JobHandler
	Favorite     *FavoriteHandler
	Listing      *ListingHandler
	Availability *AvailabilityHandler
	Record       *RecordHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Account:      NewAccountHandler(base, sc.AccountService),
		Job:          NewJobHandler(base, sc.JobService),
		Favorite:     NewFavoriteHandler(base, sc.FavoriteService, sc.JobService),
		Listing:      NewListingHandler(base, sc.ListingService),
		Availability: NewAvailabilityHandler(base, sc.AvailabilityService),
		Record:       NewRecordHandler(base, sc.RecordService),
	}
}
