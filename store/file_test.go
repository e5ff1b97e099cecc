package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shhplace/models"
)

func testSpots() []models.Spot {
	return []models.Spot{
		{
			ID:          "a",
			Lat:         37.5041,
			Lng:         127.0448,
			Title:       "Rooftop garden",
			Description: "Nobody comes up here after lunch.",
			Rating:      4,
			Category:    models.CategoryCafe,
			CreatedAt:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			Comments:    []models.Comment{},
			NoiseLevel:  40,
			QuietScore:  80,
		},
		{
			ID:          "b",
			Lat:         37.5644,
			Lng:         126.9847,
			Title:       "Back alley bench",
			Description: "Shaded and calm.",
			CreatedAt:   time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
			Likes:       3,
			Comments:    []models.Comment{{ID: "c1", Author: "anonymous", Content: "so true", CreatedAt: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)}},
			NoiseLevel:  50,
			QuietScore:  60,
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "spots.json"))
	want := testSpots()

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got, "load right after save must return the same collection in order")
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got, "missing slot loads as empty, not nil")
}

func TestFileStoreCorruptPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spots.json")
	require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0o644))

	got, err := NewFileStore(path).Load()
	require.NoError(t, err, "corrupt payload must not surface an error")
	assert.Empty(t, got)
}

func TestFileStoreReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spots.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(testSpots()))

	require.NoError(t, s.Reset())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Resetting an already-empty slot is fine.
	assert.NoError(t, s.Reset())
}

func TestFileStoreSaveOverwritesWholeCollection(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "spots.json"))
	require.NoError(t, s.Save(testSpots()))
	require.NoError(t, s.Save([]models.Spot{}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got, "each save replaces the slot, no merging")
}
