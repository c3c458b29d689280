// Package volume converts an enriched profile into per-muscle-group weekly
// volume landmarks (MEV/MAV/MRV). Base values are literature-derived
// constants scaled by the profile's volume tolerance multiplier.
package volume

import (
	"math"

	"github.com/daniel/program-coach/internal/types"
)

const (
	// minMEV is the floor for scaled minimum effective volume.
	minMEV = 4
	// maxMRV is the safety ceiling for scaled maximum recoverable volume.
	maxMRV = 30
)

// baseLandmarks holds the unscaled weekly set landmarks per muscle group.
// Every muscle group in types.AllMuscleGroups has an entry; the package
// test enforces this.
var baseLandmarks = map[types.MuscleGroup]types.VolumeLandmark{
	types.MuscleChest:      {MEV: 8, MAV: 14, MRV: 22},
	types.MuscleBack:       {MEV: 10, MAV: 16, MRV: 25},
	types.MuscleShoulders:  {MEV: 8, MAV: 16, MRV: 26},
	types.MuscleBiceps:     {MEV: 8, MAV: 14, MRV: 20},
	types.MuscleTriceps:    {MEV: 6, MAV: 12, MRV: 18},
	types.MuscleQuads:      {MEV: 8, MAV: 14, MRV: 20},
	types.MuscleHamstrings: {MEV: 6, MAV: 10, MRV: 16},
	types.MuscleGlutes:     {MEV: 6, MAV: 12, MRV: 16},
	types.MuscleCalves:     {MEV: 6, MAV: 12, MRV: 16},
	types.MuscleAbs:        {MEV: 6, MAV: 10, MRV: 16},
}

// Calculate scales the base landmarks by the profile's volume tolerance and
// clamps the results to sane integer bounds. The returned mapping always
// contains every muscle group in the fixed set, and MEV <= MAV <= MRV holds
// for every entry. Deterministic: identical input yields identical output.
func Calculate(enriched types.EnrichedProfile) types.VolumeLandmarks {
	landmarks := make(types.VolumeLandmarks, len(baseLandmarks))
	for _, mg := range types.AllMuscleGroups() {
		base := baseLandmarks[mg]
		landmarks[mg] = scale(base, enriched.VolumeTolerance)
	}
	return landmarks
}

// scale applies the tolerance multiplier and restores the ordering
// invariant after clamping.
func scale(base types.VolumeLandmark, tolerance float64) types.VolumeLandmark {
	mev := int(math.Round(float64(base.MEV) * tolerance))
	mav := int(math.Round(float64(base.MAV) * tolerance))
	mrv := int(math.Round(float64(base.MRV) * tolerance))

	if mev < minMEV {
		mev = minMEV
	}
	if mrv > maxMRV {
		mrv = maxMRV
	}

	// Clamping can reorder the triple at the extremes; restore MEV <= MAV <= MRV.
	if mav < mev {
		mav = mev
	}
	if mrv < mav {
		mrv = mav
	}
	if mrv > maxMRV {
		mrv = maxMRV
	}
	if mav > mrv {
		mav = mrv
	}
	if mev > mav {
		mev = mav
	}

	return types.VolumeLandmark{MEV: mev, MAV: mav, MRV: mrv}
}
