// Package enrichment derives hidden training attributes (training age,
// recovery capacity, stress level, volume tolerance) from raw intake
// answers. Enrichment is a pure function: no side effects, no external
// calls, recomputed fresh on every generation request.
package enrichment

import (
	"strings"

	"github.com/daniel/program-coach/internal/types"
)

const (
	// defaultRecoveryCapacity is the conservative baseline on the 0-10 scale.
	defaultRecoveryCapacity = 7
	// injuryRecoveryPenalty is subtracted once when any injury is reported.
	injuryRecoveryPenalty = 2
	// defaultStressLevel is assumed absent richer lifestyle signals.
	defaultStressLevel = 5
)

// trainingAgeByExperience is the fixed experience-category lookup:
// beginner under a year, intermediate one to three years, advanced beyond.
var trainingAgeByExperience = map[types.ExperienceLevel]float64{
	types.ExperienceBeginner:     0.5,
	types.ExperienceIntermediate: 2.0,
	types.ExperienceAdvanced:     4.0,
}

// Enrich derives an EnrichedProfile from the raw intake snapshot.
// It fails with a ProfileIncompleteError when goal or experience level is
// absent; everything else degrades to conservative defaults.
func Enrich(profile types.UserProfile) (types.EnrichedProfile, error) {
	var missing []string
	if profile.Goal == "" {
		missing = append(missing, "goal")
	}
	if profile.Experience == "" {
		missing = append(missing, "experience")
	}
	if len(missing) > 0 {
		return types.EnrichedProfile{}, &types.ProfileIncompleteError{MissingFields: missing}
	}

	trainingAge, ok := trainingAgeByExperience[profile.Experience]
	if !ok {
		// Unknown category: treat as beginner rather than failing.
		trainingAge = trainingAgeByExperience[types.ExperienceBeginner]
	}

	recovery := defaultRecoveryCapacity
	if strings.TrimSpace(profile.Injuries) != "" {
		recovery -= injuryRecoveryPenalty
	}
	recovery = clampInt(recovery, 0, 10)

	return types.EnrichedProfile{
		Profile:          profile,
		TrainingAgeYears: trainingAge,
		RecoveryCapacity: recovery,
		StressLevel:      defaultStressLevel,
		VolumeTolerance:  volumeTolerance(trainingAge, recovery),
	}, nil
}

// volumeTolerance is a monotonic function of training age and recovery
// capacity: more experienced, better-recovering lifters tolerate more
// weekly volume. The result multiplies the base volume landmarks.
func volumeTolerance(trainingAgeYears float64, recoveryCapacity int) float64 {
	age := trainingAgeYears
	if age > 4 {
		age = 4
	}
	tolerance := 0.8 + 0.05*age + 0.02*float64(recoveryCapacity-5)
	return clampFloat(tolerance, 0.6, 1.4)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
