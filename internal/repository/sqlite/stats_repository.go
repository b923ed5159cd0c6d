package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Dashboard(ctx context.Context, learnerID string, now time.Time) (*models.DashboardStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing dashboard stats: learner_id=%s", learnerID)

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).UTC()

	var stats models.DashboardStats
	counts := []struct {
		dest  *int
		query squirrel.SelectBuilder
	}{
		{&stats.TotalCards, sqlBuilder.Select("COUNT(*)").From("flashcards").Where(squirrel.Eq{"user_id": learnerID})},
		{&stats.TotalCategories, sqlBuilder.Select("COUNT(*)").From("categories").Where(squirrel.Eq{"user_id": learnerID})},
		{&stats.TotalReviews, sqlBuilder.Select("COUNT(*)").From("review_history").Where(squirrel.Eq{"user_id": learnerID})},
		{&stats.ReviewedToday, sqlBuilder.Select("COUNT(*)").From("review_history").
			Where(squirrel.Eq{"user_id": learnerID}).
			Where(squirrel.GtOrEq{"reviewed_at": startOfDay})},
	}
	for _, c := range counts {
		sqlStr, args, err := c.query.ToSql()
		if err != nil {
			log.Error("failed to build stats query: %v", err)
			return nil, err
		}
		if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(c.dest); err != nil {
			log.Error("failed to run stats query: %v", err)
			return nil, err
		}
	}

	// Cards whose latest ledger entry fell due before the start of today.
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM review_history r
WHERE r.user_id = ?
AND r.next_due_at <= ?
AND r.id = (
    SELECT r2.id FROM review_history r2
    WHERE r2.user_id = r.user_id AND r2.flashcard_id = r.flashcard_id
    ORDER BY r2.reviewed_at DESC, r2.id DESC
    LIMIT 1
)
`, learnerID, startOfDay).Scan(&stats.DueToday)
	if err != nil {
		log.Error("failed to count due cards: %v", err)
		return nil, err
	}

	log.Debug("dashboard stats: cards=%d, categories=%d, reviews=%d, due=%d",
		stats.TotalCards, stats.TotalCategories, stats.TotalReviews, stats.DueToday)
	return &stats, nil
}
