package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

type reviewLedger struct {
	db *sql.DB
}

// NewReviewLedger creates a new ReviewLedger implementation
func NewReviewLedger(db *sql.DB) repository.ReviewLedger {
	return &reviewLedger{db: db}
}

func (r *reviewLedger) ListForLearner(ctx context.Context, learnerID string) ([]models.ReviewEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("review_ledger")
	log.Debug("listing review events: learner_id=%s", learnerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, flashcard_id, quality, reviewed_at, next_due_at
FROM review_history
WHERE user_id = ?
ORDER BY reviewed_at ASC, id ASC
`, learnerID)
	if err != nil {
		log.Error("failed to query review events: %v", err)
		return nil, err
	}
	defer rows.Close()

	var events []models.ReviewEvent
	for rows.Next() {
		var e models.ReviewEvent
		if err := rows.Scan(&e.ID, &e.LearnerID, &e.CardID, &e.Quality, &e.ReviewedAt, &e.NextDueAt); err != nil {
			log.Error("failed to scan review event row: %v", err)
			return nil, err
		}
		events = append(events, e)
	}
	log.Debug("found %d review events", len(events))
	return events, rows.Err()
}

func (r *reviewLedger) LatestPerCard(ctx context.Context, learnerID string) (map[string]models.ReviewEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("review_ledger")
	log.Debug("fetching latest event per card: learner_id=%s", learnerID)

	// One row per card: greatest reviewed_at wins, greatest id among equal
	// timestamps. The tie-break keeps the merge deterministic when two
	// events share a timestamp.
	rows, err := r.db.QueryContext(ctx, `
SELECT r.id, r.user_id, r.flashcard_id, r.quality, r.reviewed_at, r.next_due_at
FROM review_history r
WHERE r.user_id = ?
AND r.id = (
    SELECT r2.id FROM review_history r2
    WHERE r2.user_id = r.user_id AND r2.flashcard_id = r.flashcard_id
    ORDER BY r2.reviewed_at DESC, r2.id DESC
    LIMIT 1
)
`, learnerID)
	if err != nil {
		log.Error("failed to query latest events: %v", err)
		return nil, err
	}
	defer rows.Close()

	latest := make(map[string]models.ReviewEvent)
	for rows.Next() {
		var e models.ReviewEvent
		if err := rows.Scan(&e.ID, &e.LearnerID, &e.CardID, &e.Quality, &e.ReviewedAt, &e.NextDueAt); err != nil {
			log.Error("failed to scan review event row: %v", err)
			return nil, err
		}
		latest[e.CardID] = e
	}
	log.Debug("found latest events for %d cards", len(latest))
	return latest, rows.Err()
}

func (r *reviewLedger) Append(ctx context.Context, learnerID, cardID string, quality int, reviewedAt, nextDueAt time.Time) (*models.ReviewEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("review_ledger")
	log.Debug("appending review event: card_id=%s, quality=%d", cardID, quality)

	e := models.ReviewEvent{
		ID:         uuid.NewString(),
		LearnerID:  learnerID,
		CardID:     cardID,
		Quality:    quality,
		ReviewedAt: reviewedAt.UTC(),
		NextDueAt:  nextDueAt.UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (id, user_id, flashcard_id, quality, reviewed_at, next_due_at)
VALUES (?, ?, ?, ?, ?, ?)
`, e.ID, e.LearnerID, e.CardID, e.Quality, e.ReviewedAt, e.NextDueAt)
	if err != nil {
		log.Error("failed to append review event: %v", err)
		return nil, err
	}
	log.Debug("review event appended: id=%s, next_due_at=%s", e.ID, e.NextDueAt.Format(time.RFC3339))
	return &e, nil
}
