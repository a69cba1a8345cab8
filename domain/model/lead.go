package model

import "time"

// Lead is a marketing-site signup submission.
type Lead struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	Plan         string    `json:"plan"`
	CreatedAt    time.Time `json:"created_at"`
}
