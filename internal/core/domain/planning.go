package domain

import "time"

// Planning is an ordered collection of activities owned by a company.
type Planning struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyID   string    `json:"company_id"`
	ActivityIDs []string  `json:"activities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
