package recordstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyejin/scholarhub/internal/app/models"
)

func newTestStore(t *testing.T) (*LocalStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	store, err := NewLocalStore(path)
	require.NoError(t, err)
	return store, path
}

func TestLocalStore_GetMissingItem(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.GetItem(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestLocalStore_PutGetRoundTrip(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	record := &models.StudentRecord{}
	record.StudentID = "20250001"
	record.ResumeID = "abc123"
	record.FileName = "resume.pdf"
	record.StorageKey = "20250001/abc123.pdf"
	require.NoError(t, store.PutItem(ctx, record))

	got, err := store.GetItem(ctx, "20250001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc123", got.ResumeID)
	assert.Equal(t, "resume.pdf", got.FileName)

	// Records survive a reload from disk
	reloaded, err := NewLocalStore(path)
	require.NoError(t, err)
	got, err = reloaded.GetItem(ctx, "20250001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc123", got.ResumeID)
}

func TestLocalStore_SavedSetSemantics(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddSavedID(ctx, "s1", "A"))
	require.NoError(t, store.AddSavedID(ctx, "s1", "A"))
	require.NoError(t, store.AddSavedID(ctx, "s1", "B"))

	record, err := store.GetItem(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"A", "B"}, record.SavedScholarshipIDs)

	require.NoError(t, store.RemoveSavedID(ctx, "s1", "A"))
	require.NoError(t, store.RemoveSavedID(ctx, "s1", "A"))
	require.NoError(t, store.RemoveSavedID(ctx, "never-seen", "A"))

	record, err = store.GetItem(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, record.SavedScholarshipIDs)
}

func TestLocalStore_GetReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddSavedID(ctx, "s1", "A"))

	record, err := store.GetItem(ctx, "s1")
	require.NoError(t, err)
	record.SavedScholarshipIDs[0] = "mutated"

	again, err := store.GetItem(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, again.SavedScholarshipIDs)
}
