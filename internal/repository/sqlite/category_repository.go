package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository implementation
func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, learnerID string) ([]models.Category, error) {
	log := logger.FromContext(ctx).WithPrefix("category_repo")
	log.Debug("listing categories: learner_id=%s", learnerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, name, description, created_at
FROM categories
WHERE user_id = ?
ORDER BY created_at ASC, id ASC
`, learnerID)
	if err != nil {
		log.Error("failed to list categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.LearnerID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			log.Error("failed to scan category row: %v", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	log.Debug("found %d categories", len(categories))
	return categories, rows.Err()
}

func (r *categoryRepository) Get(ctx context.Context, learnerID, id string) (*models.Category, error) {
	log := logger.FromContext(ctx).WithPrefix("category_repo")
	log.Debug("getting category: id=%s", id)

	var c models.Category
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, name, description, created_at
FROM categories
WHERE id = ? AND user_id = ?
`, id, learnerID).Scan(&c.ID, &c.LearnerID, &c.Name, &c.Description, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("category not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get category: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Insert(ctx context.Context, c models.Category) (*models.Category, error) {
	log := logger.FromContext(ctx).WithPrefix("category_repo")

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	log.Debug("inserting category: id=%s, name=%s", c.ID, c.Name)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO categories (id, user_id, name, description, created_at)
VALUES (?, ?, ?, ?, ?)
`, c.ID, c.LearnerID, c.Name, c.Description, c.CreatedAt)
	if err != nil {
		log.Error("failed to insert category: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, c models.Category) (*models.Category, error) {
	log := logger.FromContext(ctx).WithPrefix("category_repo")
	log.Debug("updating category: id=%s", c.ID)

	res, err := r.db.ExecContext(ctx, `
UPDATE categories
SET name = ?, description = ?
WHERE id = ? AND user_id = ?
`, c.Name, c.Description, c.ID, c.LearnerID)
	if err != nil {
		log.Error("failed to update category: %v", err)
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sql.ErrNoRows
	}
	return r.Get(ctx, c.LearnerID, c.ID)
}

func (r *categoryRepository) Delete(ctx context.Context, learnerID, id string) error {
	log := logger.FromContext(ctx).WithPrefix("category_repo")
	log.Debug("deleting category: id=%s", id)

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		// Cards survive their category; they fall back to "Unknown".
		if _, err := tx.ExecContext(ctx, `
UPDATE flashcards SET category_id = NULL WHERE category_id = ? AND user_id = ?
`, id, learnerID); err != nil {
			log.Error("failed to detach cards from category %s: %v", id, err)
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ? AND user_id = ?`, id, learnerID)
		if err != nil {
			log.Error("failed to delete category %s: %v", id, err)
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return sql.ErrNoRows
		}
		log.Debug("category %s deleted", id)
		return nil
	})
}
