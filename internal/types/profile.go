// Package types provides type definitions for structured data used throughout the program-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// ExperienceLevel categorizes how long a user has been training seriously.
type ExperienceLevel string

// Experience level constants define the closed set of intake answers.
const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Goal is the user's primary training goal from the intake questionnaire.
type Goal string

// Goal constants define the closed set of intake answers.
const (
	GoalMuscleGain     Goal = "muscle_gain"
	GoalStrength       Goal = "strength"
	GoalFatLoss        Goal = "fat_loss"
	GoalGeneralFitness Goal = "general_fitness"
	GoalEndurance      Goal = "endurance"
)

// WeightUnit is the unit the user's lift estimates are expressed in.
type WeightUnit string

// Weight unit constants
const (
	UnitKilograms WeightUnit = "kg"
	UnitPounds    WeightUnit = "lb"
)

// LiftEstimates holds the user's optional estimated one-rep maxima for the
// four compound lifts. A nil field means the user did not provide an estimate.
type LiftEstimates struct {
	Squat         *float64 `json:"squat,omitempty"`
	BenchPress    *float64 `json:"bench_press,omitempty"`
	Deadlift      *float64 `json:"deadlift,omitempty"`
	OverheadPress *float64 `json:"overhead_press,omitempty"`
}

// Count returns the number of estimates that are present and positive.
func (l LiftEstimates) Count() int {
	count := 0
	for _, v := range []*float64{l.Squat, l.BenchPress, l.Deadlift, l.OverheadPress} {
		if v != nil && *v > 0 {
			count++
		}
	}
	return count
}

// UserProfile is an immutable snapshot of a user's intake answers.
// It is created once at onboarding and read-only to the derivation engine.
type UserProfile struct {
	UserID         uuid.UUID       `json:"user_id"`
	Goal           Goal            `json:"goal"`
	Experience     ExperienceLevel `json:"experience"`
	DaysPerWeek    int             `json:"days_per_week"`
	SessionMinutes int             `json:"session_minutes"`
	Equipment      []string        `json:"equipment,omitempty"`
	Injuries       string          `json:"injuries,omitempty"`
	Lifts          LiftEstimates   `json:"lifts"`
	WeightUnit     WeightUnit      `json:"weight_unit"`
}

// EnrichedProfile holds training attributes derived from the raw intake
// answers. It is recomputed fresh on every generation request and never
// persisted independently.
type EnrichedProfile struct {
	Profile          UserProfile `json:"profile"`
	TrainingAgeYears float64     `json:"training_age_years"`
	RecoveryCapacity int         `json:"recovery_capacity"` // 0-10
	StressLevel      int         `json:"stress_level"`      // 0-10
	VolumeTolerance  float64     `json:"volume_tolerance"`  // multiplier applied to base volume landmarks
}
