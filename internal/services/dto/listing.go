package dto

// ListCleanersRequest carries the public listing filters. Zero values
// mean "no filter"; defaults are applied by the listing service.
type ListCleanersRequest struct {
	SearchTerm string   `form:"search_term"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	MinRating  float64  `form:"min_rating"`
	Service    string   `form:"service"`
	Page       int      `form:"page"`
	PageSize   int      `form:"page_size"`
}

// CleanerListing is one public search result.
type CleanerListing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Provider    string   `json:"provider"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Services    []string `json:"services"`
}
