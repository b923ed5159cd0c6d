package models

import "time"

// DefaultCardsPerDay caps how many never-reviewed cards enter one day's queue.
const DefaultCardsPerDay = 20

// Settings holds per-learner scheduling configuration.
type Settings struct {
	LearnerID   string    `json:"learner_id"`
	CardsPerDay int       `json:"cards_per_day"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DashboardStats summarizes a learner's collection for the dashboard view.
type DashboardStats struct {
	TotalCards      int `json:"total_cards"`
	TotalCategories int `json:"total_categories"`
	TotalReviews    int `json:"total_reviews"`
	DueToday        int `json:"due_today"`
	ReviewedToday   int `json:"reviewed_today"`
}
