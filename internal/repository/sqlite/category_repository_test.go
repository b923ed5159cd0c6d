package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valentinlamine/MemoryApp/internal/models"
)

func TestCategoryRepository_InsertListGet(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	spanish := r.seedCategory(t, "Spanish")
	geo := r.seedCategory(t, "Geography")

	got, err := r.categories.Get(ctx, learnerID, spanish.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Spanish", got.Name)

	all, err := r.categories.List(ctx, learnerID)
	require.NoError(t, err)
	require.Len(t, all, 2)

	missing, err := r.categories.Get(ctx, learnerID, "no-such-category")
	require.NoError(t, err)
	assert.Nil(t, missing)

	foreign, err := r.categories.Get(ctx, "someone-else", geo.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)
}

func TestCategoryRepository_Update(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	category := r.seedCategory(t, "Spnish")

	edited := *category
	edited.Name = "Spanish"
	edited.Description = "vocabulary"
	updated, err := r.categories.Update(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, "Spanish", updated.Name)
	assert.Equal(t, "vocabulary", updated.Description)

	got, err := r.categories.Get(ctx, learnerID, category.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Spanish", got.Name)
}

func TestCategoryRepository_UpdateNotFound(t *testing.T) {
	r := newRepos(t)

	_, err := r.categories.Update(context.Background(), models.Category{
		ID:        "no-such-category",
		LearnerID: learnerID,
		Name:      "Spanish",
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCategoryRepository_DeleteDetachesCards(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	spanish := r.seedCategory(t, "Spanish")
	card := r.seedCard(t, "hola?", spanish.ID, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, r.categories.Delete(ctx, learnerID, spanish.ID))

	// The card survives without its category.
	got, err := r.cards.Get(ctx, learnerID, card.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.CategoryID)

	gone, err := r.categories.Get(ctx, learnerID, spanish.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCategoryRepository_DeleteNotFound(t *testing.T) {
	r := newRepos(t)

	err := r.categories.Delete(context.Background(), learnerID, "no-such-category")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
