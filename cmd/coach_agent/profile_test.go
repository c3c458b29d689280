package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/program-coach/internal/types"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfileFile_Valid(t *testing.T) {
	path := writeProfileFile(t, `{
		"user_id": "11111111-2222-3333-4444-555555555555",
		"goal": "strength",
		"experience": "intermediate",
		"days_per_week": 4,
		"session_minutes": 75,
		"weight_unit": "kg",
		"lifts": {"squat": 140, "bench_press": 100}
	}`)

	profile, err := loadProfileFile(path)
	require.NoError(t, err)
	assert.Equal(t, types.GoalStrength, profile.Goal)
	assert.Equal(t, types.ExperienceIntermediate, profile.Experience)
	assert.Equal(t, 4, profile.DaysPerWeek)
	require.NotNil(t, profile.Lifts.Squat)
	assert.Equal(t, 140.0, *profile.Lifts.Squat)
}

func TestLoadProfileFile_MissingFile(t *testing.T) {
	_, err := loadProfileFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadProfileFile_InvalidJSON(t *testing.T) {
	path := writeProfileFile(t, "{not json")

	_, err := loadProfileFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profile file")
}
