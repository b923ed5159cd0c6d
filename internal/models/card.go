package models

import "time"

// Card is a learner-authored flashcard. The scheduler only ever reads
// cards; all mutation happens through the card-management API.
type Card struct {
	ID         string    `json:"id"`
	LearnerID  string    `json:"learner_id"`
	CategoryID string    `json:"category_id,omitempty"`
	CardNumber int       `json:"card_number"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	ImageURL   string    `json:"image_url,omitempty"`
	AudioURL   string    `json:"audio_url,omitempty"`
	Difficulty int       `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CardFilter narrows card listings. Zero values mean "no filter".
type CardFilter struct {
	CategoryID string
}
