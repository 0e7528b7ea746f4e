package dto

type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	AccountType string `json:"account_type" binding:"required" validate:"is-account-type"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
}

// UpdateProfileRequest carries the self-service profile fields. Nil
// means "leave unchanged".
type UpdateProfileRequest struct {
	Name            *string   `json:"name"`
	Bio             *string   `json:"bio"`
	Location        *string   `json:"location"`
	Rates           *float64  `json:"rates"`
	ServicesOffered *[]string `json:"services_offered"`
}

type SetCleanerStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"is-account-status"`
}
