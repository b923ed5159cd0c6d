package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/testutil/mocks"
)

func newCardService(t *testing.T) (CardService, *mocks.MockCardRepository, *mocks.MockCategoryRepository) {
	t.Helper()

	cards := new(mocks.MockCardRepository)
	categories := new(mocks.MockCategoryRepository)
	return NewCardService(cards, categories), cards, categories
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateCard(t *testing.T) {
	svc, cards, _ := newCardService(t)
	ctx := context.Background()

	cards.On("List", mock.Anything, "learner-1", models.CardFilter{}).Return([]models.Card{}, nil)
	cards.On("Insert", mock.Anything, mock.MatchedBy(func(c models.Card) bool {
		return c.Question == "q" && c.Answer == "a" && c.Difficulty == 3 && c.CardNumber == 1
	})).Return(&models.Card{ID: "card-1", LearnerID: "learner-1"}, nil)

	created, err := svc.CreateCard(ctx, models.Card{
		LearnerID: "learner-1",
		Question:  "  q  ",
		Answer:    "a",
	})
	require.NoError(t, err)
	assert.Equal(t, "card-1", created.ID)
	cards.AssertExpectations(t)
}

func TestCreateCardValidation(t *testing.T) {
	tests := []struct {
		name string
		card models.Card
	}{
		{"empty question", models.Card{LearnerID: "learner-1", Question: "   ", Answer: "a"}},
		{"empty answer", models.Card{LearnerID: "learner-1", Question: "q", Answer: ""}},
		{"difficulty too high", models.Card{LearnerID: "learner-1", Question: "q", Answer: "a", Difficulty: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newCardService(t)
			_, err := svc.CreateCard(context.Background(), tt.card)
			assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
		})
	}
}

func TestCreateCardUnknownCategory(t *testing.T) {
	svc, _, categories := newCardService(t)

	categories.On("Get", mock.Anything, "learner-1", "cat-1").Return(nil, nil)

	_, err := svc.CreateCard(context.Background(), models.Card{
		LearnerID:  "learner-1",
		CategoryID: "cat-1",
		Question:   "q",
		Answer:     "a",
	})
	assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestUpdateCard(t *testing.T) {
	svc, cards, _ := newCardService(t)

	cards.On("Update", mock.Anything, mock.MatchedBy(func(c models.Card) bool {
		return c.ID == "card-1" && c.Question == "q" && c.Difficulty == 3
	})).Return(&models.Card{ID: "card-1", LearnerID: "learner-1", Question: "q"}, nil)

	updated, err := svc.UpdateCard(context.Background(), models.Card{
		ID:        "card-1",
		LearnerID: "learner-1",
		Question:  "  q  ",
		Answer:    "a",
	})
	require.NoError(t, err)
	assert.Equal(t, "card-1", updated.ID)
	cards.AssertExpectations(t)
}

func TestUpdateCardRequiresID(t *testing.T) {
	svc, _, _ := newCardService(t)

	_, err := svc.UpdateCard(context.Background(), models.Card{
		LearnerID: "learner-1",
		Question:  "q",
		Answer:    "a",
	})
	assertAppErrorCode(t, err, apperrors.ErrCodeBadRequest)
}

func TestUpdateCardNotFound(t *testing.T) {
	svc, cards, _ := newCardService(t)

	cards.On("Update", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)

	_, err := svc.UpdateCard(context.Background(), models.Card{
		ID:        "card-1",
		LearnerID: "learner-1",
		Question:  "q",
		Answer:    "a",
	})
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestUpdateCardValidation(t *testing.T) {
	svc, _, _ := newCardService(t)

	_, err := svc.UpdateCard(context.Background(), models.Card{
		ID:        "card-1",
		LearnerID: "learner-1",
		Question:  "   ",
		Answer:    "a",
	})
	assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestGetCardNotFound(t *testing.T) {
	svc, cards, _ := newCardService(t)

	cards.On("Get", mock.Anything, "learner-1", "card-1").Return(nil, nil)

	_, err := svc.GetCard(context.Background(), "learner-1", "card-1")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestDeleteCard(t *testing.T) {
	svc, cards, _ := newCardService(t)

	cards.On("Delete", mock.Anything, "learner-1", "card-1").Return(nil)
	require.NoError(t, svc.DeleteCard(context.Background(), "learner-1", "card-1"))
}

func TestDeleteCardNotFound(t *testing.T) {
	svc, cards, _ := newCardService(t)

	cards.On("Delete", mock.Anything, "learner-1", "card-1").Return(sql.ErrNoRows)

	err := svc.DeleteCard(context.Background(), "learner-1", "card-1")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestDeleteCardRepositoryFailure(t *testing.T) {
	svc, cards, _ := newCardService(t)

	storageErr := fmt.Errorf("database locked")
	cards.On("Delete", mock.Anything, "learner-1", "card-1").Return(storageErr)

	err := svc.DeleteCard(context.Background(), "learner-1", "card-1")
	assertAppErrorCode(t, err, apperrors.ErrCodeRepository)
	assert.True(t, errors.Is(err, storageErr), "cause is preserved")
}
