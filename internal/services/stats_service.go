package services

import (
	"context"
	"time"

	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

// StatsService aggregates dashboard statistics
type StatsService interface {
	Dashboard(ctx context.Context, learnerID string, now time.Time) (*models.DashboardStats, error)
}

type statsService struct {
	stats repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) Dashboard(ctx context.Context, learnerID string, now time.Time) (*models.DashboardStats, error) {
	stats, err := s.stats.Dashboard(ctx, learnerID, now)
	if err != nil {
		return nil, apperrors.NewRepositoryError(err)
	}
	return stats, nil
}
