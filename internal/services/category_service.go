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

// CategoryService handles category management business logic
type CategoryService interface {
	ListCategories(ctx context.Context, learnerID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, learnerID, id string) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) ListCategories(ctx context.Context, learnerID string) ([]models.Category, error) {
	categories, err := s.categories.List(ctx, learnerID)
	if err != nil {
		return nil, apperrors.NewRepositoryError(err)
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	log := logger.FromContext(ctx).WithPrefix("category_service")

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, apperrors.NewValidationError("name", "cannot be empty")
	}

	created, err := s.categories.Insert(ctx, category)
	if err != nil {
		log.Error("failed to create category: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}
	log.Info("category created: id=%s, name=%s", created.ID, created.Name)
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	log := logger.FromContext(ctx).WithPrefix("category_service")

	if category.ID == "" {
		return nil, apperrors.NewBadRequestError("category id required")
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, apperrors.NewValidationError("name", "cannot be empty")
	}

	updated, err := s.categories.Update(ctx, category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category", category.ID)
		}
		log.Error("failed to update category: %v", err)
		return nil, apperrors.NewRepositoryError(err)
	}
	log.Info("category updated: id=%s, name=%s", updated.ID, updated.Name)
	return updated, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, learnerID, id string) error {
	log := logger.FromContext(ctx).WithPrefix("category_service")

	if err := s.categories.Delete(ctx, learnerID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewNotFoundError("category", id)
		}
		log.Error("failed to delete category: %v", err)
		return apperrors.NewRepositoryError(err)
	}
	log.Info("category deleted: id=%s", id)
	return nil
}
