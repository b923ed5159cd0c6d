package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_GetUnset(t *testing.T) {
	r := newRepos(t)

	got, err := r.settings.Get(context.Background(), learnerID)
	require.NoError(t, err)
	assert.Nil(t, got, "no stored row means no settings")
}

func TestSettingsRepository_UpsertInsertsThenUpdates(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	created, err := r.settings.Upsert(ctx, learnerID, 10)
	require.NoError(t, err)
	assert.Equal(t, learnerID, created.LearnerID)
	assert.Equal(t, 10, created.CardsPerDay)

	updated, err := r.settings.Upsert(ctx, learnerID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.CardsPerDay)

	got, err := r.settings.Get(ctx, learnerID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 50, got.CardsPerDay)
}

func TestSettingsRepository_ScopedToLearner(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	_, err := r.settings.Upsert(ctx, learnerID, 10)
	require.NoError(t, err)

	got, err := r.settings.Get(ctx, "someone-else")
	require.NoError(t, err)
	assert.Nil(t, got)
}
