package models

import "time"

// ReviewEvent is one append-only ledger entry: a card was reviewed at
// ReviewedAt with the given quality, and is next due at NextDueAt.
// Entries are written exactly once and never updated; the latest entry
// per card is the card's current scheduling state.
type ReviewEvent struct {
	ID         string    `json:"id"`
	LearnerID  string    `json:"learner_id"`
	CardID     string    `json:"card_id"`
	Quality    int       `json:"quality"`
	ReviewedAt time.Time `json:"reviewed_at"`
	NextDueAt  time.Time `json:"next_due_at"`
}
