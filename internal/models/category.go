package models

import "time"

// Category groups cards for the management surface. Scheduling never
// depends on categories; a card without one resolves to UnknownCategory.
type Category struct {
	ID          string    `json:"id"`
	LearnerID   string    `json:"learner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UnknownCategory is the placeholder name used when a card's category
// is missing or has been deleted.
const UnknownCategory = "Unknown"
