package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/valentinlamine/MemoryApp/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Dashboard(ctx context.Context, learnerID string, now time.Time) (*models.DashboardStats, error) {
	args := m.Called(ctx, learnerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}
