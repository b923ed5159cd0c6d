package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/valentinlamine/MemoryApp/internal/models"
)

// MockSettingsRepository is a mock implementation of repository.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, learnerID string) (*models.Settings, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, learnerID string, cardsPerDay int) (*models.Settings, error) {
	args := m.Called(ctx, learnerID, cardsPerDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}
