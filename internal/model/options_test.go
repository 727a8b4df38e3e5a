package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsFromJson(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"dataset_path": "material/dataset1.txt",
		"phase2_seconds": 10,
		"class_preferred_rooms": {"t01": ["RoomA", "RoomB"]},
		"preferred_rooms_hard": true,
		"random_seed": 42
	}`
	assert.Nil(t, os.WriteFile(path, []byte(content), 0666))

	// Act
	options, err := OptionsFromJson(path)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, "material/dataset1.txt", options.DatasetPath)
	assert.Equal(t, 10, options.Phase2Seconds)
	assert.Equal(t, 1000, options.MinConflictsIters) // default survives
	assert.Equal(t, []string{"RoomA", "RoomB"}, options.ClassPreferredRooms["t01"])
	assert.True(t, options.PreferredRoomsHard)
	assert.NotNil(t, options.RandomSeed)
	assert.Equal(t, int64(42), *options.RandomSeed)
}

func TestDefaultOptions(t *testing.T) {
	options := DefaultOptions()

	assert.Equal(t, 60, options.Phase2Seconds)
	assert.Equal(t, 1000, options.MinConflictsIters)
	assert.Nil(t, options.RandomSeed)
}
