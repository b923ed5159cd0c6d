package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/testutil/mocks"
)

func TestCreateCategoryValidation(t *testing.T) {
	svc := NewCategoryService(new(mocks.MockCategoryRepository))

	_, err := svc.CreateCategory(context.Background(), models.Category{
		LearnerID: "learner-1",
		Name:      "   ",
	})
	assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestUpdateCategory(t *testing.T) {
	categories := new(mocks.MockCategoryRepository)
	svc := NewCategoryService(categories)

	categories.On("Update", mock.Anything, mock.MatchedBy(func(c models.Category) bool {
		return c.ID == "cat-1" && c.Name == "Spanish"
	})).Return(&models.Category{ID: "cat-1", LearnerID: "learner-1", Name: "Spanish"}, nil)

	updated, err := svc.UpdateCategory(context.Background(), models.Category{
		ID:        "cat-1",
		LearnerID: "learner-1",
		Name:      "  Spanish  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spanish", updated.Name)
	categories.AssertExpectations(t)
}

func TestUpdateCategoryRequiresID(t *testing.T) {
	svc := NewCategoryService(new(mocks.MockCategoryRepository))

	_, err := svc.UpdateCategory(context.Background(), models.Category{
		LearnerID: "learner-1",
		Name:      "Spanish",
	})
	assertAppErrorCode(t, err, apperrors.ErrCodeBadRequest)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	categories := new(mocks.MockCategoryRepository)
	svc := NewCategoryService(categories)

	categories.On("Update", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)

	_, err := svc.UpdateCategory(context.Background(), models.Category{
		ID:        "cat-1",
		LearnerID: "learner-1",
		Name:      "Spanish",
	})
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	categories := new(mocks.MockCategoryRepository)
	svc := NewCategoryService(categories)

	categories.On("Delete", mock.Anything, "learner-1", "cat-1").Return(sql.ErrNoRows)

	err := svc.DeleteCategory(context.Background(), "learner-1", "cat-1")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}
