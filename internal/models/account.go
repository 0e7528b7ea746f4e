package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Account struct {
	BaseModel
	Name         string        `gorm:"not null" json:"name"`
	Email        string        `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"not null" json:"-"`
	AccountType  AccountType   `gorm:"type:varchar(20);not null;index" json:"account_type"`
	Status       AccountStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Rates        *float64      `json:"rates,omitempty"`
	Bio          string        `json:"bio"`
	Location     string        `json:"location"`

	// ServicesOffered is a JSON array of service names.
	ServicesOffered datatypes.JSON `json:"services_offered"`

	// AverageRating is a denormalized column maintained by the external
	// rating flow. Read-only here.
	AverageRating *float64 `json:"average_rating,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}

// Services decodes the services_offered column. A missing or malformed
// column reads as an empty list.
func (a *Account) Services() []string {
	if len(a.ServicesOffered) == 0 {
		return []string{}
	}
	var services []string
	if err := json.Unmarshal(a.ServicesOffered, &services); err != nil {
		return []string{}
	}
	return services
}

// FormatServices encodes a service list for the services_offered column.
func FormatServices(services []string) datatypes.JSON {
	if len(services) == 0 {
		return datatypes.JSON("[]")
	}
	data, err := json.Marshal(services)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}
