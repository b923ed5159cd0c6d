package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
	"github.com/valentinlamine/MemoryApp/internal/repository/sqlite"
	"github.com/valentinlamine/MemoryApp/internal/testutil"
)

const learnerID = "learner-1"

type repos struct {
	db         *sql.DB
	cards      repository.CardRepository
	ledger     repository.ReviewLedger
	categories repository.CategoryRepository
	settings   repository.SettingsRepository
	stats      repository.StatsRepository
}

func newRepos(t *testing.T) *repos {
	t.Helper()

	db := testutil.NewTestDB(t)
	return &repos{
		db:         db,
		cards:      sqlite.NewCardRepository(db),
		ledger:     sqlite.NewReviewLedger(db),
		categories: sqlite.NewCategoryRepository(db),
		settings:   sqlite.NewSettingsRepository(db),
		stats:      sqlite.NewStatsRepository(db),
	}
}

func (r *repos) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()

	c, err := r.categories.Insert(context.Background(), models.Category{
		LearnerID: learnerID,
		Name:      name,
	})
	require.NoError(t, err)
	return c
}

func (r *repos) seedCard(t *testing.T, question string, categoryID string, createdAt time.Time) *models.Card {
	t.Helper()

	c, err := r.cards.Insert(context.Background(), models.Card{
		LearnerID:  learnerID,
		CategoryID: categoryID,
		Question:   question,
		Answer:     "answer to " + question,
		Difficulty: 3,
		CreatedAt:  createdAt,
	})
	require.NoError(t, err)
	return c
}
