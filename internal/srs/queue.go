package srs

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

// QueueCard is a card as presented in the day's queue, with its category
// resolved to a display name.
type QueueCard struct {
	Card         models.Card `json:"card"`
	CategoryName string      `json:"category_name"`
}

// ReviewItem pairs a due card with the ledger entry that made it due.
type ReviewItem struct {
	QueueCard
	DueEvent models.ReviewEvent `json:"due_event"`
}

// DueQueue is the per-session working set: never-reviewed cards capped at
// the daily limit, and previously-reviewed cards that have fallen due.
// Derived from the card store and the ledger; never persisted.
type DueQueue struct {
	New    []QueueCard  `json:"new"`
	Review []ReviewItem `json:"review"`
}

// Size returns the total number of cards in the queue.
func (q *DueQueue) Size() int {
	return len(q.New) + len(q.Review)
}

// Empty reports whether both lists are exhausted.
func (q *DueQueue) Empty() bool {
	return q.Size() == 0
}

// Contains reports whether the card is still present in either list.
func (q *DueQueue) Contains(cardID string) bool {
	for _, c := range q.New {
		if c.Card.ID == cardID {
			return true
		}
	}
	for _, item := range q.Review {
		if item.Card.ID == cardID {
			return true
		}
	}
	return false
}

// Remove deletes the card from whichever list holds it, so the same
// session never re-presents a graded card. Returns false when the card
// was not in the queue.
func (q *DueQueue) Remove(cardID string) bool {
	for i, c := range q.New {
		if c.Card.ID == cardID {
			q.New = append(q.New[:i], q.New[i+1:]...)
			return true
		}
	}
	for i, item := range q.Review {
		if item.Card.ID == cardID {
			q.Review = append(q.Review[:i], q.Review[i+1:]...)
			return true
		}
	}
	return false
}

// Calculator builds the day's due queue from the card repository and the
// review ledger.
type Calculator struct {
	cards      repository.CardRepository
	ledger     repository.ReviewLedger
	categories repository.CategoryRepository
}

// NewCalculator creates a new Calculator.
func NewCalculator(cards repository.CardRepository, ledger repository.ReviewLedger, categories repository.CategoryRepository) *Calculator {
	return &Calculator{cards: cards, ledger: ledger, categories: categories}
}

// TodayQueue partitions the learner's cards into New (never reviewed,
// creation order, truncated to dailyNewCap) and Review (latest ledger
// entry due at or before the start of now's day, ascending by due date).
// Any storage failure returns no queue rather than a partial one.
func (c *Calculator) TodayQueue(ctx context.Context, learnerID string, now time.Time, dailyNewCap int) (*DueQueue, error) {
	log := logger.FromContext(ctx).WithPrefix("srs")

	if learnerID == "" {
		return nil, apperrors.NewUnauthenticatedError("no learner identity for queue computation")
	}

	cards, err := c.cards.List(ctx, learnerID, models.CardFilter{})
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}

	latest, err := c.ledger.LatestPerCard(ctx, learnerID)
	if err != nil {
		log.Error("failed to load latest review events: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}

	names := c.categoryNames(ctx, learnerID)
	cutoff := StartOfDay(now)

	queue := &DueQueue{New: []QueueCard{}, Review: []ReviewItem{}}
	for _, card := range cards {
		qc := QueueCard{Card: card, CategoryName: names[card.CategoryID]}
		if qc.CategoryName == "" {
			qc.CategoryName = models.UnknownCategory
		}

		event, reviewed := latest[card.ID]
		if !reviewed {
			if dailyNewCap > 0 && len(queue.New) < dailyNewCap {
				queue.New = append(queue.New, qc)
			}
			continue
		}
		if !event.NextDueAt.After(cutoff) {
			queue.Review = append(queue.Review, ReviewItem{QueueCard: qc, DueEvent: event})
		}
	}

	// Ascending by due date. Ties fall back to event timestamp and then
	// event id, keeping repeated computations identical.
	sort.SliceStable(queue.Review, func(i, j int) bool {
		a, b := queue.Review[i].DueEvent, queue.Review[j].DueEvent
		if !a.NextDueAt.Equal(b.NextDueAt) {
			return a.NextDueAt.Before(b.NextDueAt)
		}
		if !a.ReviewedAt.Equal(b.ReviewedAt) {
			return a.ReviewedAt.Before(b.ReviewedAt)
		}
		return a.ID < b.ID
	})

	log.Debug("queue computed: learner_id=%s, new=%d, review=%d", learnerID, len(queue.New), len(queue.Review))
	return queue, nil
}

// categoryNames resolves category ids to names. Resolution is
// opportunistic: a failure leaves every card on the "Unknown" placeholder
// instead of failing the queue computation.
func (c *Calculator) categoryNames(ctx context.Context, learnerID string) map[string]string {
	log := logger.FromContext(ctx).WithPrefix("srs")

	categories, err := c.categories.List(ctx, learnerID)
	if err != nil {
		log.Warn("failed to resolve categories, using placeholder: %v", err)
		return map[string]string{}
	}
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names
}
