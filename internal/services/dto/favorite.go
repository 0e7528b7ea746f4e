package dto

// SaveFavoriteRequest sets the desired end state for one
// (cleaner, user) pair; repeating the call is a no-op.
type SaveFavoriteRequest struct {
	Want bool `json:"want"`
}

type AddSlotsRequest struct {
	Date     string   `json:"date" binding:"required"`
	Services []string `json:"services" binding:"required,min=1"`
}
