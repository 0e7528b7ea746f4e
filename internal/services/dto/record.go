package dto

import "cleanmatch_backend/internal/query"

// RecordSearchRequest is the generic filtered fetch consumed by the
// admin records endpoint: ordered filter triples, a projection and a
// page window.
type RecordSearchRequest struct {
	Columns  []string       `json:"columns"`
	Filters  []query.Filter `json:"filters"`
	Page     int            `json:"page" binding:"min=1"`
	PageSize int            `json:"page_size" binding:"min=1,max=100"`
}
