package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestLiftEstimates_Count(t *testing.T) {
	tests := []struct {
		name  string
		lifts LiftEstimates
		want  int
	}{
		{name: "none", lifts: LiftEstimates{}, want: 0},
		{name: "all four", lifts: LiftEstimates{
			Squat: floatPtr(140), BenchPress: floatPtr(100), Deadlift: floatPtr(180), OverheadPress: floatPtr(60),
		}, want: 4},
		{name: "zero ignored", lifts: LiftEstimates{Squat: floatPtr(0), BenchPress: floatPtr(100)}, want: 1},
		{name: "negative ignored", lifts: LiftEstimates{Deadlift: floatPtr(-5)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lifts.Count())
		})
	}
}

func TestAllMuscleGroups_Complete(t *testing.T) {
	groups := AllMuscleGroups()
	assert.Len(t, groups, 10)
	assert.Equal(t, MuscleChest, groups[0])
	assert.Equal(t, MuscleAbs, groups[len(groups)-1])
}
