package services

import (
	"context"
	"sync"
	"time"

	"github.com/valentinlamine/MemoryApp/internal/auth"
	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
	"github.com/valentinlamine/MemoryApp/internal/srs"
)

// SessionService manages one grading session per learner.
type SessionService interface {
	Open(ctx context.Context, learnerID string, now time.Time) (srs.Snapshot, error)
	State(ctx context.Context, learnerID string) (srs.Snapshot, error)
	Queue(ctx context.Context, learnerID string) (srs.DueQueue, error)
	Reveal(ctx context.Context, learnerID string) (srs.Snapshot, error)
	Grade(ctx context.Context, learnerID, cardID string, quality int, now time.Time) (*models.ReviewEvent, srs.Snapshot, error)
	Restart(ctx context.Context, learnerID string, now time.Time) (srs.Snapshot, error)
	Close(ctx context.Context, learnerID string)
}

type sessionService struct {
	mu       sync.Mutex
	sessions map[string]*srs.Session

	calc               *srs.Calculator
	ledger             repository.ReviewLedger
	settings           repository.SettingsRepository
	defaultCardsPerDay int
}

// NewSessionService creates a SessionService and subscribes it to auth
// session events: an invalidated identity drops the learner's in-memory
// queue so the next access recomputes from storage.
func NewSessionService(calc *srs.Calculator, ledger repository.ReviewLedger, settings repository.SettingsRepository, defaultCardsPerDay int, hub *auth.Hub) SessionService {
	s := &sessionService{
		sessions:           make(map[string]*srs.Session),
		calc:               calc,
		ledger:             ledger,
		settings:           settings,
		defaultCardsPerDay: defaultCardsPerDay,
	}
	if hub != nil {
		hub.Subscribe(s.onAuthEvent)
	}
	return s
}

func (s *sessionService) onAuthEvent(e auth.Event) {
	if e.Kind != auth.SessionInvalidated {
		return
	}
	logger.Default().WithPrefix("session").Debug("auth session invalidated, dropping queue: learner_id=%s", e.LearnerID)
	s.Close(context.Background(), e.LearnerID)
}

func (s *sessionService) Open(ctx context.Context, learnerID string, now time.Time) (srs.Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("session")

	if learnerID == "" {
		return srs.Snapshot{}, apperrors.NewUnauthenticatedError("no learner identity")
	}

	session := srs.NewSession(learnerID, s.calc, s.ledger, s.settings, s.defaultCardsPerDay)
	if err := session.Open(ctx, now); err != nil {
		return srs.Snapshot{}, err
	}

	s.mu.Lock()
	if old, ok := s.sessions[learnerID]; ok {
		old.Close()
	}
	s.sessions[learnerID] = session
	s.mu.Unlock()

	snap := session.Snapshot()
	log.Info("session opened: learner_id=%s, total=%d", learnerID, snap.Total)
	return snap, nil
}

func (s *sessionService) get(learnerID string) (*srs.Session, error) {
	if learnerID == "" {
		return nil, apperrors.NewUnauthenticatedError("no learner identity")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[learnerID]
	if !ok {
		return nil, apperrors.NewNotFoundError("session", learnerID)
	}
	return session, nil
}

func (s *sessionService) State(ctx context.Context, learnerID string) (srs.Snapshot, error) {
	session, err := s.get(learnerID)
	if err != nil {
		return srs.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *sessionService) Queue(ctx context.Context, learnerID string) (srs.DueQueue, error) {
	session, err := s.get(learnerID)
	if err != nil {
		return srs.DueQueue{}, err
	}
	return session.Queue(), nil
}

func (s *sessionService) Reveal(ctx context.Context, learnerID string) (srs.Snapshot, error) {
	session, err := s.get(learnerID)
	if err != nil {
		return srs.Snapshot{}, err
	}
	if err := session.Reveal(); err != nil {
		return srs.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *sessionService) Grade(ctx context.Context, learnerID, cardID string, quality int, now time.Time) (*models.ReviewEvent, srs.Snapshot, error) {
	session, err := s.get(learnerID)
	if err != nil {
		return nil, srs.Snapshot{}, err
	}
	event, err := session.Grade(ctx, cardID, quality, now)
	if err != nil {
		return nil, srs.Snapshot{}, err
	}
	return event, session.Snapshot(), nil
}

func (s *sessionService) Restart(ctx context.Context, learnerID string, now time.Time) (srs.Snapshot, error) {
	session, err := s.get(learnerID)
	if err != nil {
		return srs.Snapshot{}, err
	}
	if err := session.Restart(ctx, now); err != nil {
		return srs.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *sessionService) Close(ctx context.Context, learnerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[learnerID]; ok {
		session.Close()
		delete(s.sessions, learnerID)
	}
}
