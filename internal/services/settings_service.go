package services

import (
	"context"
	"time"

	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

// SettingsService exposes per-learner scheduling configuration.
type SettingsService interface {
	GetSettings(ctx context.Context, learnerID string) (*models.Settings, error)
	UpdateSettings(ctx context.Context, learnerID string, cardsPerDay int) (*models.Settings, error)
}

type settingsService struct {
	settings           repository.SettingsRepository
	defaultCardsPerDay int
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settings repository.SettingsRepository, defaultCardsPerDay int) SettingsService {
	return &settingsService{settings: settings, defaultCardsPerDay: defaultCardsPerDay}
}

func (s *settingsService) GetSettings(ctx context.Context, learnerID string) (*models.Settings, error) {
	stored, err := s.settings.Get(ctx, learnerID)
	if err != nil {
		return nil, apperrors.NewRepositoryError(err)
	}
	if stored == nil {
		// Never-saved settings read as the configured default.
		return &models.Settings{LearnerID: learnerID, CardsPerDay: s.defaultCardsPerDay, UpdatedAt: time.Time{}}, nil
	}
	return stored, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, learnerID string, cardsPerDay int) (*models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_service")

	if cardsPerDay < 0 {
		return nil, apperrors.NewValidationError("cards_per_day", "cannot be negative")
	}

	updated, err := s.settings.Upsert(ctx, learnerID, cardsPerDay)
	if err != nil {
		log.Error("failed to update settings: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}
	log.Info("settings updated: learner_id=%s, cards_per_day=%d", learnerID, cardsPerDay)
	return updated, nil
}
