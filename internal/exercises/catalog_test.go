package exercises

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/program-coach/internal/types"
)

func TestMuscleGroupsFor_KnownExercise(t *testing.T) {
	groups := MuscleGroupsFor("Romanian Deadlift")
	require.NotNil(t, groups)
	assert.Contains(t, groups, types.MuscleHamstrings)
	assert.Contains(t, groups, types.MuscleGlutes)
}

func TestMuscleGroupsFor_CaseInsensitive(t *testing.T) {
	groups := MuscleGroupsFor("lat pulldown")
	require.NotNil(t, groups)
	assert.Contains(t, groups, types.MuscleBack)
}

func TestMuscleGroupsFor_UnknownExercise(t *testing.T) {
	assert.Nil(t, MuscleGroupsFor("Underwater Basket Weaving"))
}

func TestMuscleGroupsFor_TrimsWhitespace(t *testing.T) {
	groups := MuscleGroupsFor("  Leg Press  ")
	require.NotNil(t, groups)
	assert.Contains(t, groups, types.MuscleQuads)
}

func TestCatalog_AllMuscleGroupsValid(t *testing.T) {
	valid := make(map[types.MuscleGroup]bool)
	for _, mg := range types.AllMuscleGroups() {
		valid[mg] = true
	}

	for _, name := range CatalogNames() {
		for _, mg := range MuscleGroupsFor(name) {
			assert.True(t, valid[mg], "exercise %q references unknown muscle group %q", name, mg)
		}
	}
}

func TestCatalog_EveryMuscleGroupCovered(t *testing.T) {
	covered := make(map[types.MuscleGroup]bool)
	for _, name := range CatalogNames() {
		for _, mg := range MuscleGroupsFor(name) {
			covered[mg] = true
		}
	}

	for _, mg := range types.AllMuscleGroups() {
		assert.True(t, covered[mg], "no catalog exercise targets %q", mg)
	}
}

func TestIsCompound(t *testing.T) {
	tests := []struct {
		name     string
		exercise string
		want     bool
	}{
		{"exact match", "Squat", true},
		{"superstring match", "Paused Bench Press", true},
		{"substring match", "Bench", true},
		{"variant of deadlift", "Romanian Deadlift", true},
		{"case insensitive", "DEADLIFT", true},
		{"accessory", "Lateral Raise", false},
		{"similar but distinct", "Machine Chest Press", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompound(tt.exercise))
		})
	}
}

func TestCompoundLifts_ReturnsCopy(t *testing.T) {
	lifts := CompoundLifts()
	require.NotEmpty(t, lifts)
	lifts[0] = "Tampered"
	assert.Equal(t, "Squat", CompoundLifts()[0])
}
