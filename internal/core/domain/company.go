package domain

import "time"

// Company is a tenant: it owns users, plannings and activities.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	UserIDs     []string  `json:"users"`
	ActivityIDs []string  `json:"activities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
