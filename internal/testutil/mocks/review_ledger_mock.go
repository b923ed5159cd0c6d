package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/valentinlamine/MemoryApp/internal/models"
)

// MockReviewLedger is a mock implementation of repository.ReviewLedger
type MockReviewLedger struct {
	mock.Mock
}

func (m *MockReviewLedger) ListForLearner(ctx context.Context, learnerID string) ([]models.ReviewEvent, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewEvent), args.Error(1)
}

func (m *MockReviewLedger) LatestPerCard(ctx context.Context, learnerID string) (map[string]models.ReviewEvent, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.ReviewEvent), args.Error(1)
}

func (m *MockReviewLedger) Append(ctx context.Context, learnerID, cardID string, quality int, reviewedAt, nextDueAt time.Time) (*models.ReviewEvent, error) {
	args := m.Called(ctx, learnerID, cardID, quality, reviewedAt, nextDueAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewEvent), args.Error(1)
}
