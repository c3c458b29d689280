package types

// Severity tiers for strength ratio issues, derived from how far below the
// minimum acceptable ratio the user's computed ratio falls.
type Severity string

// Severity constants
const (
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeveritySevere   Severity = "severe"
)

// StrengthRatioIssue describes one inter-lift ratio that fell below its
// minimum acceptable threshold.
type StrengthRatioIssue struct {
	Name          string   `json:"name"` // e.g. "deadlift:squat"
	ComputedRatio float64  `json:"computed_ratio"`
	MinimumRatio  float64  `json:"minimum_ratio"`
	Severity      Severity `json:"severity"`
}

// WeakPointResult is the analyzer's output: ratio issues ordered by priority,
// the deduplicated set of primary weak points, and a ranked corrective
// exercise list. Exactly one default result (general balance) is returned
// when fewer than two lift estimates exist or no finding was generated.
type WeakPointResult struct {
	Issues              []StrengthRatioIssue `json:"issues,omitempty"`
	PrimaryWeakPoints   []string             `json:"primary_weak_points"`
	CorrectiveExercises []string             `json:"corrective_exercises"`
	IsDefault           bool                 `json:"is_default"`
}
