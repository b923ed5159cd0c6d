package srs

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

// State is the presentation-facing phase of a grading session.
type State string

const (
	// StateAwaitingReveal: the question side of the current card is shown.
	StateAwaitingReveal State = "awaiting_reveal"
	// StateAnswerShown: the answer is revealed, a quality rating is expected.
	StateAnswerShown State = "answer_shown"
	// StateComplete: both queue lists are empty.
	StateComplete State = "session_complete"
)

// CurrentCard is the card currently presented to the learner.
type CurrentCard struct {
	QueueCard
	IsReview bool                `json:"is_review"`
	DueEvent *models.ReviewEvent `json:"due_event,omitempty"`
}

// Snapshot is a read-only view of session progress for the presentation
// layer.
type Snapshot struct {
	State           State        `json:"state"`
	Current         *CurrentCard `json:"current,omitempty"`
	Completed       int          `json:"completed"`
	Total           int          `json:"total"`
	NewRemaining    int          `json:"new_remaining"`
	ReviewRemaining int          `json:"review_remaining"`
}

// Session owns one learner's in-memory due queue and drives the
// reveal/grade state machine. It is constructed per authenticated
// learner and lives until Close; it is never shared across learners.
type Session struct {
	mu sync.Mutex

	learnerID string
	calc      *Calculator
	ledger    repository.ReviewLedger
	settings  repository.SettingsRepository

	defaultCardsPerDay int
	cardsPerDay        int
	settingsLoaded     bool

	queue     *DueQueue
	state     State
	current   *CurrentCard
	completed int
	total     int
	closed    bool
}

// NewSession creates a session for the given learner. Call Open before use.
func NewSession(learnerID string, calc *Calculator, ledger repository.ReviewLedger, settings repository.SettingsRepository, defaultCardsPerDay int) *Session {
	return &Session{
		learnerID:          learnerID,
		calc:               calc,
		ledger:             ledger,
		settings:           settings,
		defaultCardsPerDay: defaultCardsPerDay,
	}
}

// Open loads settings (once per session) and computes the day's queue.
func (s *Session) Open(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUsable(); err != nil {
		return err
	}
	if err := s.loadSettingsOnce(ctx); err != nil {
		return err
	}
	return s.recompute(ctx, now)
}

// Restart re-invokes the due-set calculator, picking up cards that became
// due since the session opened (e.g. the clock crossed midnight).
func (s *Session) Restart(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUsable(); err != nil {
		return err
	}
	if !s.settingsLoaded {
		return apperrors.NewBadRequestError("session not opened")
	}
	return s.recompute(ctx, now)
}

// recompute replaces the queue and resets progress. Caller holds the lock.
func (s *Session) recompute(ctx context.Context, now time.Time) error {
	queue, err := s.calc.TodayQueue(ctx, s.learnerID, now, s.cardsPerDay)
	if err != nil {
		return err
	}
	s.queue = queue
	s.total = queue.Size()
	s.completed = 0
	s.advance()
	return nil
}

// Reveal flips the current card to its answer side.
func (s *Session) Reveal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUsable(); err != nil {
		return err
	}
	switch s.state {
	case StateAwaitingReveal:
		s.state = StateAnswerShown
		return nil
	case StateAnswerShown:
		// Already revealed; harmless.
		return nil
	default:
		return apperrors.NewBadRequestError("no card to reveal")
	}
}

// Grade records a quality rating for a card in the queue. The ledger
// entry is appended first; only after a successful append is the card
// removed from the in-memory queue, so a failed write leaves the card
// presentable (at-least-once review semantics).
//
// Grade deliberately does not require a prior Reveal, and accepts any
// card still in the queue rather than only the current one. A grade is
// valid evidence of a review however the client got there; rejecting it
// would lose the rating.
func (s *Session) Grade(ctx context.Context, cardID string, quality int, now time.Time) (*models.ReviewEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("srs")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUsable(); err != nil {
		return nil, err
	}
	if s.queue == nil {
		return nil, apperrors.NewBadRequestError("session not opened")
	}
	if !s.queue.Contains(cardID) {
		return nil, apperrors.NewNotFoundError("card in session queue", cardID)
	}

	q, clamped := NormalizeQuality(quality)
	if clamped {
		log.Warn("quality %d out of range, using fail-safe default %d: learner_id=%s, card_id=%s",
			quality, q, s.learnerID, cardID)
	}

	nextDue := NextDue(now, q)
	event, err := s.ledger.Append(ctx, s.learnerID, cardID, q, now, nextDue)
	if err != nil {
		log.Error("failed to append review event, card stays in queue: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}

	s.queue.Remove(cardID)
	s.completed++
	if s.current == nil || s.current.Card.ID == cardID {
		s.advance()
	}
	log.Debug("card graded: card_id=%s, quality=%d, next_due=%s, state=%s",
		cardID, q, nextDue.Format(time.RFC3339), s.state)
	return event, nil
}

// advance selects the next card (review cards first, then new) and sets
// the state accordingly. Caller holds the lock.
func (s *Session) advance() {
	if len(s.queue.Review) > 0 {
		item := s.queue.Review[0]
		event := item.DueEvent
		s.current = &CurrentCard{QueueCard: item.QueueCard, IsReview: true, DueEvent: &event}
		s.state = StateAwaitingReveal
		return
	}
	if len(s.queue.New) > 0 {
		s.current = &CurrentCard{QueueCard: s.queue.New[0]}
		s.state = StateAwaitingReveal
		return
	}
	s.current = nil
	s.state = StateComplete
}

// Snapshot returns the session's presentation state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:     s.state,
		Completed: s.completed,
		Total:     s.total,
	}
	if s.queue != nil {
		snap.NewRemaining = len(s.queue.New)
		snap.ReviewRemaining = len(s.queue.Review)
	}
	if s.current != nil {
		current := *s.current
		snap.Current = &current
	}
	return snap
}

// Queue returns a copy of the remaining queue lists.
func (s *Session) Queue() DueQueue {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := DueQueue{New: []QueueCard{}, Review: []ReviewItem{}}
	if s.queue != nil {
		q.New = append(q.New, s.queue.New...)
		q.Review = append(q.Review, s.queue.Review...)
	}
	return q
}

// Close invalidates the session; every later operation fails with
// UNAUTHENTICATED until a new session is opened.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.queue = nil
	s.current = nil
	s.state = StateComplete
}

func (s *Session) ensureUsable() error {
	if s.closed {
		return apperrors.NewUnauthenticatedError("session closed")
	}
	return nil
}

// loadSettingsOnce memoizes the learner's settings for the session
// lifetime. Missing settings fall back to the configured default cap.
// Caller holds the lock.
func (s *Session) loadSettingsOnce(ctx context.Context) error {
	if s.settingsLoaded {
		return nil
	}
	stored, err := s.settings.Get(ctx, s.learnerID)
	if err != nil {
		return apperrors.NewRepositoryError(err)
	}
	if stored != nil {
		s.cardsPerDay = stored.CardsPerDay
	} else {
		s.cardsPerDay = s.defaultCardsPerDay
	}
	s.settingsLoaded = true
	return nil
}
