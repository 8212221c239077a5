package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepo_RoundTrip(t *testing.T) {
	conn := setupDB(t)
	repo := NewSQLiteJournalRepo(conn)
	ctx := context.Background()

	saved, err := repo.SaveEntry(ctx, "pm_abc", "Internal data shows share usage is down 25%.")
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.Timestamp.IsZero())

	got, err := repo.GetPrivate(ctx, "pm_abc")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Text, got.Text)
}

func TestJournalRepo_GetPrivate_NotFound(t *testing.T) {
	conn := setupDB(t)
	repo := NewSQLiteJournalRepo(conn)

	_, err := repo.GetPrivate(context.Background(), "pm_nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournalRepo_SaveEntry_Replaces(t *testing.T) {
	conn := setupDB(t)
	repo := NewSQLiteJournalRepo(conn)
	ctx := context.Background()

	_, err := repo.SaveEntry(ctx, "pm_abc", "first")
	require.NoError(t, err)
	_, err = repo.SaveEntry(ctx, "pm_abc", "second")
	require.NoError(t, err)

	got, err := repo.GetPrivate(ctx, "pm_abc")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)
}
