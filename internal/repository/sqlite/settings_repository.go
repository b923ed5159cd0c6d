package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository implementation
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, learnerID string) (*models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("getting settings: learner_id=%s", learnerID)

	var s models.Settings
	err := r.db.QueryRowContext(ctx, `
SELECT user_id, cards_per_day, updated_at
FROM user_settings
WHERE user_id = ?
`, learnerID).Scan(&s.LearnerID, &s.CardsPerDay, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no settings stored for learner %s", learnerID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get settings: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, learnerID string, cardsPerDay int) (*models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("upserting settings: learner_id=%s, cards_per_day=%d", learnerID, cardsPerDay)

	now := time.Now().UTC()
	var s models.Settings
	err := r.db.QueryRowContext(ctx, `
INSERT INTO user_settings (user_id, cards_per_day, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET cards_per_day = excluded.cards_per_day, updated_at = excluded.updated_at
RETURNING user_id, cards_per_day, updated_at
`, learnerID, cardsPerDay, now).Scan(&s.LearnerID, &s.CardsPerDay, &s.UpdatedAt)
	if err != nil {
		log.Error("failed to upsert settings: %v", err)
		return nil, err
	}
	return &s, nil
}
