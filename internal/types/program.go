package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DayFocus is the closed enumeration of focus tags a workout day may carry.
type DayFocus string

// Focus tag constants as they appear in generated programs
const (
	FocusPush         DayFocus = "push"
	FocusPull         DayFocus = "pull"
	FocusLegs         DayFocus = "legs"
	FocusUpper        DayFocus = "upper"
	FocusLower        DayFocus = "lower"
	FocusFullBody     DayFocus = "full_body"
	FocusArms         DayFocus = "arms"
	FocusCore         DayFocus = "core"
	FocusConditioning DayFocus = "conditioning"
	FocusRest         DayFocus = "rest"
)

// Reps is either an integer or a range string ("8-12") in the generated
// JSON. It normalizes both forms to a string representation.
type Reps string

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (r *Reps) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Reps(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Reps(strconv.Itoa(n))
		return nil
	}
	return fmt.Errorf("reps must be an integer or a range string, got %s", string(data))
}

// ExerciseDetail is a single prescribed exercise within a workout day.
type ExerciseDetail struct {
	Name     string   `json:"name"`
	Sets     int      `json:"sets"`
	Reps     Reps     `json:"reps"`
	Rest     string   `json:"rest"`
	Tempo    string   `json:"tempo,omitempty"`
	RPE      *float64 `json:"rpe,omitempty"`
	Weight   string   `json:"weight,omitempty"`
	Category string   `json:"category,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// WorkoutDay is one calendar day within a training week. Exercises is empty
// iff the day is a rest day.
type WorkoutDay struct {
	DayOfWeek                int              `json:"dayOfWeek"` // Monday=1 .. Sunday=7
	IsRestDay                bool             `json:"isRestDay"`
	Focus                    DayFocus         `json:"focus,omitempty"`
	Exercises                []ExerciseDetail `json:"exercises"`
	WarmUp                   []string         `json:"warmUp,omitempty"`
	CoolDown                 []string         `json:"coolDown,omitempty"`
	EstimatedDurationMinutes int              `json:"estimatedDurationMinutes,omitempty"`
}

// TrainingWeek is an ordered list of exactly seven workout days.
type TrainingWeek struct {
	WeekNumber          int          `json:"weekNumber"`
	Days                []WorkoutDay `json:"days"`
	WeeklyGoals         string       `json:"weeklyGoals,omitempty"`
	ProgressionStrategy string       `json:"progressionStrategy,omitempty"`
	CoachTip            string       `json:"coachTip,omitempty"`
}

// TrainingPhase groups consecutive weeks under one progression strategy.
type TrainingPhase struct {
	PhaseName           string         `json:"phaseName"`
	DurationWeeks       int            `json:"durationWeeks"`
	Weeks               []TrainingWeek `json:"weeks"`
	ProgressionStrategy string         `json:"progressionStrategy,omitempty"`
}

// TrainingProgram is the structured multi-week program produced by the
// generative backend and validated by the engine. The JSON field names form
// the output contract consumed downstream.
type TrainingProgram struct {
	ProgramName        string          `json:"programName"`
	Description        string          `json:"description"`
	DurationWeeksTotal int             `json:"durationWeeksTotal"`
	Phases             []TrainingPhase `json:"phases"`
	GeneralAdvice      string          `json:"generalAdvice,omitempty"`
	DifficultyLevel    string          `json:"difficultyLevel,omitempty"`
	TrainingFrequency  int             `json:"trainingFrequency,omitempty"`
}

// AllDays iterates every workout day across all phases and weeks in order.
func (p *TrainingProgram) AllDays() []WorkoutDay {
	var days []WorkoutDay
	for _, phase := range p.Phases {
		for _, week := range phase.Weeks {
			days = append(days, week.Days...)
		}
	}
	return days
}

// ExerciseNames returns every exercise name appearing on any non-rest day,
// in program order, including duplicates.
func (p *TrainingProgram) ExerciseNames() []string {
	var names []string
	for _, day := range p.AllDays() {
		if day.IsRestDay {
			continue
		}
		for _, ex := range day.Exercises {
			names = append(names, ex.Name)
		}
	}
	return names
}
