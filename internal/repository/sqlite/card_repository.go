package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
	"github.com/valentinlamine/MemoryApp/internal/repository"
)

type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *sql.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) List(ctx context.Context, learnerID string, filter models.CardFilter) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("listing cards: learner_id=%s, category_id=%s", learnerID, filter.CategoryID)

	query := sqlBuilder.Select(
		"id", "user_id", "category_id", "card_number", "question", "answer",
		"image_url", "audio_url", "difficulty", "created_at",
	).From("flashcards").
		Where(squirrel.Eq{"user_id": learnerID})

	if filter.CategoryID != "" {
		query = query.Where(squirrel.Eq{"category_id": filter.CategoryID})
	}

	// Card creation order; id breaks ties so repeated reads are identical.
	query = query.OrderBy("created_at ASC", "id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d cards", len(cards))
	return cards, rows.Err()
}

func (r *cardRepository) Get(ctx context.Context, learnerID, id string) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("getting card: id=%s", id)

	var c models.Card
	var categoryID sql.NullString
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, category_id, card_number, question, answer, image_url, audio_url, difficulty, created_at
FROM flashcards
WHERE id = ? AND user_id = ?
`, id, learnerID).Scan(&c.ID, &c.LearnerID, &categoryID, &c.CardNumber, &c.Question, &c.Answer, &c.ImageURL, &c.AudioURL, &c.Difficulty, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("card not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, err
	}
	if categoryID.Valid {
		c.CategoryID = categoryID.String
	}
	return &c, nil
}

func (r *cardRepository) Insert(ctx context.Context, c models.Card) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	log.Debug("inserting card: id=%s, learner_id=%s", c.ID, c.LearnerID)

	var categoryID any
	if c.CategoryID != "" {
		categoryID = c.CategoryID
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO flashcards (id, user_id, category_id, card_number, question, answer, image_url, audio_url, difficulty, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.ID, c.LearnerID, categoryID, c.CardNumber, c.Question, c.Answer, c.ImageURL, c.AudioURL, c.Difficulty, c.CreatedAt)
	if err != nil {
		log.Error("failed to insert card: %v", err)
		return nil, err
	}
	log.Debug("card inserted: id=%s", c.ID)
	return &c, nil
}

func (r *cardRepository) Update(ctx context.Context, c models.Card) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("updating card: id=%s", c.ID)

	var categoryID any
	if c.CategoryID != "" {
		categoryID = c.CategoryID
	}
	// card_number and created_at are immutable; the ledger is untouched so
	// an edit keeps the card's scheduling state.
	res, err := r.db.ExecContext(ctx, `
UPDATE flashcards
SET category_id = ?, question = ?, answer = ?, image_url = ?, audio_url = ?, difficulty = ?
WHERE id = ? AND user_id = ?
`, categoryID, c.Question, c.Answer, c.ImageURL, c.AudioURL, c.Difficulty, c.ID, c.LearnerID)
	if err != nil {
		log.Error("failed to update card: %v", err)
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sql.ErrNoRows
	}
	log.Debug("card updated: id=%s", c.ID)
	return r.Get(ctx, c.LearnerID, c.ID)
}

func (r *cardRepository) Delete(ctx context.Context, learnerID, id string) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("deleting card and its review events: id=%s", id)

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		// Ledger entries cascade with the card; this is the only path that
		// removes review history.
		if _, err := tx.ExecContext(ctx, `DELETE FROM review_history WHERE flashcard_id = ? AND user_id = ?`, id, learnerID); err != nil {
			log.Error("failed to delete review events for card %s: %v", id, err)
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM flashcards WHERE id = ? AND user_id = ?`, id, learnerID)
		if err != nil {
			log.Error("failed to delete card %s: %v", id, err)
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return sql.ErrNoRows
		}
		log.Debug("card %s deleted", id)
		return nil
	})
}

func scanCard(rows *sql.Rows) (models.Card, error) {
	var c models.Card
	var categoryID sql.NullString
	err := rows.Scan(&c.ID, &c.LearnerID, &categoryID, &c.CardNumber, &c.Question, &c.Answer, &c.ImageURL, &c.AudioURL, &c.Difficulty, &c.CreatedAt)
	if categoryID.Valid {
		c.CategoryID = categoryID.String
	}
	return c, err
}
