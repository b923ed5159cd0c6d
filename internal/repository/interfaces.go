package repository

import (
	"context"
	"time"

	"github.com/valentinlamine/MemoryApp/internal/models"
)

// CardRepository handles card data access. All queries are filtered by the
// owning learner at the storage boundary; a card belonging to another
// learner behaves as if it did not exist.
type CardRepository interface {
	List(ctx context.Context, learnerID string, filter models.CardFilter) ([]models.Card, error)
	Get(ctx context.Context, learnerID, id string) (*models.Card, error)
	Insert(ctx context.Context, card models.Card) (*models.Card, error)
	// Update rewrites the card's content in place. The review ledger is
	// untouched; editing never resets scheduling state.
	Update(ctx context.Context, card models.Card) (*models.Card, error)
	Delete(ctx context.Context, learnerID, id string) error
}

// ReviewLedger is the append-only log of review outcomes. Append is the
// only mutation; entries are never updated or deleted.
type ReviewLedger interface {
	ListForLearner(ctx context.Context, learnerID string) ([]models.ReviewEvent, error)
	// LatestPerCard keeps the most recent event per card, by reviewed_at;
	// ties broken by greatest event id so the result is deterministic.
	LatestPerCard(ctx context.Context, learnerID string) (map[string]models.ReviewEvent, error)
	Append(ctx context.Context, learnerID, cardID string, quality int, reviewedAt, nextDueAt time.Time) (*models.ReviewEvent, error)
}

// CategoryRepository handles category data access
type CategoryRepository interface {
	List(ctx context.Context, learnerID string) ([]models.Category, error)
	Get(ctx context.Context, learnerID, id string) (*models.Category, error)
	Insert(ctx context.Context, category models.Category) (*models.Category, error)
	Update(ctx context.Context, category models.Category) (*models.Category, error)
	Delete(ctx context.Context, learnerID, id string) error
}

// SettingsRepository handles per-learner settings
type SettingsRepository interface {
	// Get returns nil when the learner has never saved settings.
	Get(ctx context.Context, learnerID string) (*models.Settings, error)
	Upsert(ctx context.Context, learnerID string, cardsPerDay int) (*models.Settings, error)
}

// StatsRepository aggregates collection counts for the dashboard
type StatsRepository interface {
	Dashboard(ctx context.Context, learnerID string, now time.Time) (*models.DashboardStats, error)
}
