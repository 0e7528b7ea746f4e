package services

// ServiceContainer holds every service the boundary needs.
type ServiceContainer struct {
	AccountService      AccountService
	JobService          JobService
	FavoriteService     FavoriteService
	ListingService      ListingService
	AvailabilityService AvailabilityService
	RecordService       RecordService
}
