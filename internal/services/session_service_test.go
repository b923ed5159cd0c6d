package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valentinlamine/MemoryApp/internal/auth"
	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/srs"
	"github.com/valentinlamine/MemoryApp/internal/testutil/mocks"
)

func newSessionService(t *testing.T, hub *auth.Hub, cards []models.Card) SessionService {
	t.Helper()

	cardRepo := new(mocks.MockCardRepository)
	ledger := new(mocks.MockReviewLedger)
	categories := new(mocks.MockCategoryRepository)
	settings := new(mocks.MockSettingsRepository)

	cardRepo.On("List", mock.Anything, "learner-1", models.CardFilter{}).Return(cards, nil)
	ledger.On("LatestPerCard", mock.Anything, "learner-1").Return(map[string]models.ReviewEvent{}, nil)
	categories.On("List", mock.Anything, "learner-1").Return([]models.Category{}, nil)
	settings.On("Get", mock.Anything, "learner-1").Return(nil, nil)

	calc := srs.NewCalculator(cardRepo, ledger, categories)
	return NewSessionService(calc, ledger, settings, models.DefaultCardsPerDay, hub)
}

func TestSessionServiceOpenAndState(t *testing.T) {
	svc := newSessionService(t, nil, []models.Card{
		{ID: "card-1", LearnerID: "learner-1", Question: "q", Answer: "a"},
	})
	ctx := context.Background()

	snap, err := svc.Open(ctx, "learner-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, srs.StateAwaitingReveal, snap.State)
	assert.Equal(t, 1, snap.Total)

	snap, err = svc.State(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Total)
}

func TestSessionServiceRefusesEmptyLearner(t *testing.T) {
	svc := newSessionService(t, nil, nil)

	_, err := svc.Open(context.Background(), "", time.Now())
	assertAppErrorCode(t, err, apperrors.ErrCodeUnauthenticated)
}

func TestSessionServiceStateWithoutOpen(t *testing.T) {
	svc := newSessionService(t, nil, nil)

	_, err := svc.State(context.Background(), "learner-1")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestSessionServiceOpenReplacesExisting(t *testing.T) {
	svc := newSessionService(t, nil, []models.Card{
		{ID: "card-1", LearnerID: "learner-1", Question: "q", Answer: "a"},
	})
	ctx := context.Background()

	_, err := svc.Open(ctx, "learner-1", time.Now())
	require.NoError(t, err)
	_, err = svc.Reveal(ctx, "learner-1")
	require.NoError(t, err)

	// Reopening starts over from awaiting_reveal.
	snap, err := svc.Open(ctx, "learner-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, srs.StateAwaitingReveal, snap.State)
}

func TestSessionServiceAuthInvalidationDropsSession(t *testing.T) {
	hub := auth.NewHub()
	svc := newSessionService(t, hub, []models.Card{
		{ID: "card-1", LearnerID: "learner-1", Question: "q", Answer: "a"},
	})
	ctx := context.Background()

	_, err := svc.Open(ctx, "learner-1", time.Now())
	require.NoError(t, err)

	hub.Publish(auth.Event{Kind: auth.SessionInvalidated, LearnerID: "learner-1"})

	_, err = svc.State(ctx, "learner-1")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestSessionServiceEstablishedEventIsIgnored(t *testing.T) {
	hub := auth.NewHub()
	svc := newSessionService(t, hub, []models.Card{
		{ID: "card-1", LearnerID: "learner-1", Question: "q", Answer: "a"},
	})
	ctx := context.Background()

	_, err := svc.Open(ctx, "learner-1", time.Now())
	require.NoError(t, err)

	hub.Publish(auth.Event{Kind: auth.SessionEstablished, LearnerID: "learner-1"})

	_, err = svc.State(ctx, "learner-1")
	require.NoError(t, err)
}
