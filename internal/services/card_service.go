package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

// CardService handles card management business logic. The scheduler only
// reads cards; creation and deletion live here, behind the management API.
type CardService interface {
	ListCards(ctx context.Context, learnerID string, filter models.CardFilter) ([]models.Card, error)
	GetCard(ctx context.Context, learnerID, id string) (*models.Card, error)
	CreateCard(ctx context.Context, card models.Card) (*models.Card, error)
	UpdateCard(ctx context.Context, card models.Card) (*models.Card, error)
	DeleteCard(ctx context.Context, learnerID, id string) error
}

type cardService struct {
	cards      repository.CardRepository
	categories repository.CategoryRepository
}

// NewCardService creates a new CardService
func NewCardService(cards repository.CardRepository, categories repository.CategoryRepository) CardService {
	return &cardService{cards: cards, categories: categories}
}

func (s *cardService) ListCards(ctx context.Context, learnerID string, filter models.CardFilter) ([]models.Card, error) {
	cards, err := s.cards.List(ctx, learnerID, filter)
	if err != nil {
		return nil, apperrors.NewRepositoryError(err)
	}
	return cards, nil
}

func (s *cardService) GetCard(ctx context.Context, learnerID, id string) (*models.Card, error) {
	card, err := s.cards.Get(ctx, learnerID, id)
	if err != nil {
		return nil, apperrors.NewRepositoryError(err)
	}
	if card == nil {
		return nil, apperrors.NewNotFoundError("card", id)
	}
	return card, nil
}

// validateCardContent normalizes and checks the learner-editable fields,
// shared by create and update.
func (s *cardService) validateCardContent(ctx context.Context, card *models.Card) error {
	card.Question = strings.TrimSpace(card.Question)
	card.Answer = strings.TrimSpace(card.Answer)
	if card.Question == "" {
		return apperrors.NewValidationError("question", "cannot be empty")
	}
	if card.Answer == "" {
		return apperrors.NewValidationError("answer", "cannot be empty")
	}
	if card.Difficulty == 0 {
		card.Difficulty = 3
	}
	if card.Difficulty < 1 || card.Difficulty > 5 {
		return apperrors.NewValidationError("difficulty", "must be between 1 and 5")
	}

	if card.CategoryID != "" {
		category, err := s.categories.Get(ctx, card.LearnerID, card.CategoryID)
		if err != nil {
			return apperrors.NewRepositoryError(err)
		}
		if category == nil {
			return apperrors.NewValidationError("category_id", "unknown category")
		}
	}
	return nil
}

func (s *cardService) CreateCard(ctx context.Context, card models.Card) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_service")

	if err := s.validateCardContent(ctx, &card); err != nil {
		return nil, err
	}

	if card.CardNumber == 0 {
		existing, err := s.cards.List(ctx, card.LearnerID, models.CardFilter{})
		if err != nil {
			return nil, apperrors.NewRepositoryError(err)
		}
		card.CardNumber = len(existing) + 1
	}

	created, err := s.cards.Insert(ctx, card)
	if err != nil {
		log.Error("failed to create card: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}
	log.Info("card created: id=%s, learner_id=%s", created.ID, created.LearnerID)
	return created, nil
}

// UpdateCard rewrites a card's content. The review ledger is never
// touched: editing a card keeps its scheduling state, unlike delete.
func (s *cardService) UpdateCard(ctx context.Context, card models.Card) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_service")

	if card.ID == "" {
		return nil, apperrors.NewBadRequestError("card id required")
	}
	if err := s.validateCardContent(ctx, &card); err != nil {
		return nil, err
	}

	updated, err := s.cards.Update(ctx, card)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("card", card.ID)
		}
		log.Error("failed to update card: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}
	log.Info("card updated: id=%s", updated.ID)
	return updated, nil
}

func (s *cardService) DeleteCard(ctx context.Context, learnerID, id string) error {
	log := logger.FromContext(ctx).WithPrefix("card_service")

	if err := s.cards.Delete(ctx, learnerID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewNotFoundError("card", id)
		}
		log.Error("failed to delete card: %v", err)
		return apperrors.NewRepositoryError(err)
	}
	log.Info("card deleted: id=%s", id)
	return nil
}
