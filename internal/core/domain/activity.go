package domain

import "time"

// Activity is a single scheduled slot: a day plus a start/end time window.
// Times are stored as "HH:MM" strings, matching what clients send.
type Activity struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
