package services

import (
	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/query"
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/internal/services/dto"

	"gorm.io/gorm"
)

// cleanerListingOrder keeps paging stable: rating descending with nulls
// last, then name ascending for ties. Applied before pagination on every
// page request.
const cleanerListingOrder = query.Order("average_rating IS NULL, average_rating DESC, name ASC")

// searchColumns are the free-text match targets.
var searchColumns = []string{"name", "bio"}

type ListingService interface {
	SearchCleaners(db *gorm.DB, req *dto.ListCleanersRequest) (*dto.PaginatedResponse, error)
}

type listingService struct {
	defaultPageSize int
}

func NewListingService(defaultPageSize int) ListingService {
	if defaultPageSize <= 0 {
		defaultPageSize = 6
	}
	return &listingService{defaultPageSize: defaultPageSize}
}

// SearchCleaners composes the mandatory listing defaults with the
// caller's filters and runs them through the filtered access layer.
func (s *listingService) SearchCleaners(db *gorm.DB, req *dto.ListCleanersRequest) (*dto.PaginatedResponse, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = s.defaultPageSize
	}

	// Only active, approved cleaners are ever listed.
	filters := []query.Filter{
		{Column: "account_type", Op: query.OpEq, Value: models.AccountTypeCleaner},
		{Column: "status", Op: query.OpEq, Value: models.AccountStatusActive},
	}
	if req.MinPrice != nil {
		filters = append(filters, query.Filter{Column: "rates", Op: query.OpGte, Value: *req.MinPrice})
	}
	if req.MaxPrice != nil {
		filters = append(filters, query.Filter{Column: "rates", Op: query.OpLte, Value: *req.MaxPrice})
	}
	if req.MinRating > 0 {
		filters = append(filters, query.Filter{Column: "average_rating", Op: query.OpGte, Value: req.MinRating})
	}
	if req.Service != "" {
		filters = append(filters, query.Filter{Column: "services_offered", Op: query.OpContains, Value: req.Service})
	}

	var search *query.TextSearch
	if req.SearchTerm != "" {
		search = &query.TextSearch{Columns: searchColumns, Term: req.SearchTerm}
	}

	result, err := repositories.FetchPage[models.Account](db, repositories.AccountSchema, repositories.FetchRequest{
		Filters:  filters,
		Search:   search,
		Order:    cleanerListingOrder,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	listings := make([]dto.CleanerListing, 0, len(result.Data))
	for i := range result.Data {
		listings = append(listings, toListing(&result.Data[i]))
	}
	return dto.NewPaginatedResponse(listings, result.TotalCount, page, pageSize), nil
}

func toListing(account *models.Account) dto.CleanerListing {
	listing := dto.CleanerListing{
		ID:          account.ID,
		Title:       account.Name + "'s Cleaning Services",
		Description: account.Bio,
		Provider:    account.Name,
		Location:    account.Location,
		Services:    account.Services(),
	}
	if listing.Description == "" {
		listing.Description = "Experienced and reliable cleaner."
	}
	if listing.Location == "" {
		listing.Location = "Service area not specified"
	}
	if account.Rates != nil {
		listing.Price = *account.Rates
	}
	if account.AverageRating != nil {
		listing.Rating = *account.AverageRating
	}
	return listing
}
