package volume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/program-coach/internal/types"
)

func enrichedWithTolerance(tolerance float64) types.EnrichedProfile {
	return types.EnrichedProfile{
		TrainingAgeYears: 2.0,
		RecoveryCapacity: 7,
		StressLevel:      5,
		VolumeTolerance:  tolerance,
	}
}

func TestCalculate_OrderingInvariant(t *testing.T) {
	// Extreme tolerances exercise the clamp paths.
	for _, tolerance := range []float64{0.3, 0.6, 0.85, 1.0, 1.15, 1.4, 2.5} {
		landmarks := Calculate(enrichedWithTolerance(tolerance))
		for mg, lm := range landmarks {
			assert.LessOrEqual(t, lm.MEV, lm.MAV, "tolerance %v, muscle %s", tolerance, mg)
			assert.LessOrEqual(t, lm.MAV, lm.MRV, "tolerance %v, muscle %s", tolerance, mg)
			assert.GreaterOrEqual(t, lm.MEV, 4, "tolerance %v, muscle %s", tolerance, mg)
			assert.LessOrEqual(t, lm.MRV, 30, "tolerance %v, muscle %s", tolerance, mg)
		}
	}
}

func TestCalculate_KeySetAlwaysComplete(t *testing.T) {
	for _, tolerance := range []float64{0.6, 1.0, 1.4} {
		landmarks := Calculate(enrichedWithTolerance(tolerance))
		require.Len(t, landmarks, len(types.AllMuscleGroups()))
		for _, mg := range types.AllMuscleGroups() {
			_, ok := landmarks[mg]
			assert.True(t, ok, "missing muscle group %s at tolerance %v", mg, tolerance)
		}
	}
}

func TestCalculate_ToleranceScalesVolume(t *testing.T) {
	low := Calculate(enrichedWithTolerance(0.7))
	high := Calculate(enrichedWithTolerance(1.3))

	assert.Greater(t, high[types.MuscleBack].MRV, low[types.MuscleBack].MRV)
	assert.GreaterOrEqual(t, high[types.MuscleBack].MAV, low[types.MuscleBack].MAV)
}

func TestCalculate_UnitToleranceMatchesBaseTable(t *testing.T) {
	landmarks := Calculate(enrichedWithTolerance(1.0))
	assert.Equal(t, types.VolumeLandmark{MEV: 10, MAV: 16, MRV: 25}, landmarks[types.MuscleBack])
	assert.Equal(t, types.VolumeLandmark{MEV: 8, MAV: 14, MRV: 22}, landmarks[types.MuscleChest])
}

// Idempotence: two runs over the same profile must serialize byte-identically.
func TestCalculate_Deterministic(t *testing.T) {
	enriched := enrichedWithTolerance(1.05)

	first, err := json.Marshal(Calculate(enriched))
	require.NoError(t, err)
	second, err := json.Marshal(Calculate(enriched))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBaseLandmarks_CoverFixedMuscleSet(t *testing.T) {
	for _, mg := range types.AllMuscleGroups() {
		base, ok := baseLandmarks[mg]
		require.True(t, ok, "base table missing %s", mg)
		assert.LessOrEqual(t, base.MEV, base.MAV)
		assert.LessOrEqual(t, base.MAV, base.MRV)
	}
}
