package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_Dashboard(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	startOfDay := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	spanish := r.seedCategory(t, "Spanish")
	due := r.seedCard(t, "due", spanish.ID, now.AddDate(0, 0, -10))
	scheduled := r.seedCard(t, "scheduled", "", now.AddDate(0, 0, -10))
	r.seedCard(t, "never reviewed", "", now.AddDate(0, 0, -10))

	// Reviewed a week ago, fell due yesterday.
	_, err := r.ledger.Append(ctx, learnerID, due.ID, 3, now.AddDate(0, 0, -8), now.AddDate(0, 0, -1))
	require.NoError(t, err)
	// Reviewed this morning, due next week.
	_, err = r.ledger.Append(ctx, learnerID, scheduled.ID, 3, startOfDay.Add(time.Hour), now.AddDate(0, 0, 7))
	require.NoError(t, err)

	stats, err := r.stats.Dashboard(ctx, learnerID, now)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCards)
	assert.Equal(t, 1, stats.TotalCategories)
	assert.Equal(t, 2, stats.TotalReviews)
	assert.Equal(t, 1, stats.ReviewedToday)
	assert.Equal(t, 1, stats.DueToday)
}

func TestStatsRepository_DashboardEmpty(t *testing.T) {
	r := newRepos(t)

	stats, err := r.stats.Dashboard(context.Background(), learnerID, time.Now())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalCards)
	assert.Zero(t, stats.TotalCategories)
	assert.Zero(t, stats.TotalReviews)
	assert.Zero(t, stats.ReviewedToday)
	assert.Zero(t, stats.DueToday)
}
