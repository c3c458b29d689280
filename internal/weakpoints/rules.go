// Package weakpoints computes inter-lift strength ratios and heuristic
// findings to produce a prioritized list of weak points with corrective
// exercises.
package weakpoints

import (
	"strings"

	"github.com/daniel/program-coach/internal/types"
)

// Minimum acceptable inter-lift ratios, literature-derived. A computed
// ratio below its minimum becomes a StrengthRatioIssue.
const (
	minDeadliftToSquat = 1.10
	minBenchToSquat    = 0.70
	minOHPToBench      = 0.60
)

// Absolute squat thresholds beyond which advanced lifters pick up a core
// stability finding, per weight unit.
const (
	coreStabilitySquatKg = 180.0
	coreStabilitySquatLb = 400.0
)

// finding is a single weak-point candidate produced by a rule.
type finding struct {
	priority    int
	weakPoint   string
	issue       *types.StrengthRatioIssue
	correctives []string
}

// rule pairs a predicate with its fixed priority. Rules are evaluated in
// declaration order; the resulting findings are sorted by ascending
// priority with declaration order breaking exact ties, so the order of the
// ruleSet slice is load-bearing and must not be reshuffled.
type rule struct {
	name     string
	priority int
	apply    func(in Input) *finding
}

// ruleSet is the complete, ordered rule list. Injury-specific rules come
// first at priority 1 so they override everything else; ratio rules follow;
// heuristic findings close the list.
var ruleSet = []rule{
	{
		name:     "knee_injury",
		priority: 1,
		apply: func(in Input) *finding {
			if !mentionsAny(in.Injuries, "knee") {
				return nil
			}
			return &finding{
				weakPoint:   "Hip and Knee Stability",
				correctives: []string{"Bulgarian Split Squat", "Single-Leg Romanian Deadlift", "Glute Bridge"},
			}
		},
	},
	{
		name:     "back_injury",
		priority: 1,
		apply: func(in Input) *finding {
			if !mentionsAny(in.Injuries, "back", "spine", "spinal", "disc") {
				return nil
			}
			return &finding{
				weakPoint:   "Spinal Stability",
				correctives: []string{"Bird Dog", "Dead Bug", "Plank"},
			}
		},
	},
	{
		name:     "shoulder_injury",
		priority: 1,
		apply: func(in Input) *finding {
			if !mentionsAny(in.Injuries, "shoulder", "rotator cuff") {
				return nil
			}
			return &finding{
				weakPoint:   "Shoulder Stability",
				correctives: []string{"Face Pull", "Rear Delt Fly", "Cable Lateral Raise"},
			}
		},
	},
	{
		name:     "deadlift_to_squat",
		priority: 2,
		apply: func(in Input) *finding {
			issue := ratioIssue("deadlift:squat", in.Lifts.Deadlift, in.Lifts.Squat, minDeadliftToSquat)
			if issue == nil {
				return nil
			}
			return &finding{
				weakPoint:   "Posterior Chain Weakness",
				issue:       issue,
				correctives: []string{"Romanian Deadlift", "Good Morning", "Back Extension", "Glute Ham Raise"},
			}
		},
	},
	{
		name:     "bench_to_squat",
		priority: 3,
		apply: func(in Input) *finding {
			issue := ratioIssue("bench:squat", in.Lifts.BenchPress, in.Lifts.Squat, minBenchToSquat)
			if issue == nil {
				return nil
			}
			return &finding{
				weakPoint:   "Upper Body Pressing Weakness",
				issue:       issue,
				correctives: []string{"Close-Grip Bench Press", "Dip", "Incline Dumbbell Press"},
			}
		},
	},
	{
		name:     "ohp_to_bench",
		priority: 4,
		apply: func(in Input) *finding {
			issue := ratioIssue("overhead-press:bench", in.Lifts.OverheadPress, in.Lifts.BenchPress, minOHPToBench)
			if issue == nil {
				return nil
			}
			return &finding{
				weakPoint:   "Overhead Pressing Weakness",
				issue:       issue,
				correctives: []string{"Seated Dumbbell Press", "Lateral Raise", "Face Pull"},
			}
		},
	},
	{
		name:     "push_pull_imbalance",
		priority: 5,
		apply: func(in Input) *finding {
			if !present(in.Lifts.BenchPress) {
				return nil
			}
			if mentionsAny(in.Injuries, "shoulder", "rotator cuff") {
				return nil
			}
			// Pressing outpacing the lower-body base signals neglected
			// pulling volume. With no squat estimate the pressing bias
			// cannot be ruled out, so the finding stands.
			if present(in.Lifts.Squat) && *in.Lifts.BenchPress <= *in.Lifts.Squat {
				return nil
			}
			return &finding{
				weakPoint:   "Push/Pull Imbalance",
				correctives: []string{"Chest-Supported Row", "Face Pull", "Dumbbell Row"},
			}
		},
	},
	{
		name:     "core_stability",
		priority: 6,
		apply: func(in Input) *finding {
			if in.Experience != types.ExperienceAdvanced || !present(in.Lifts.Squat) {
				return nil
			}
			threshold := coreStabilitySquatKg
			if in.WeightUnit == types.UnitPounds {
				threshold = coreStabilitySquatLb
			}
			if *in.Lifts.Squat <= threshold {
				return nil
			}
			return &finding{
				weakPoint:   "Core Stability",
				correctives: []string{"Ab Wheel Rollout", "Pallof Press", "Hanging Leg Raise"},
			}
		},
	},
	{
		name:     "hypertrophy_specialization",
		priority: 7,
		apply: func(in Input) *finding {
			if in.Goal != types.GoalMuscleGain {
				return nil
			}
			return &finding{
				weakPoint:   "Hypertrophy Specialization",
				correctives: []string{"Incline Dumbbell Curl", "Cable Lateral Raise", "Leg Extension", "Seated Leg Curl"},
			}
		},
	},
}

// ratioIssue computes a candidate ratio when both operands are present and
// positive, returning an issue only when the ratio falls below its minimum.
func ratioIssue(name string, numerator, denominator *float64, minimum float64) *types.StrengthRatioIssue {
	if !present(numerator) || !present(denominator) {
		return nil
	}
	ratio := *numerator / *denominator
	if ratio >= minimum {
		return nil
	}
	return &types.StrengthRatioIssue{
		Name:          name,
		ComputedRatio: ratio,
		MinimumRatio:  minimum,
		Severity:      severityFor(ratio, minimum),
	}
}

// severityFor tiers an issue by how far below threshold the ratio falls.
func severityFor(ratio, minimum float64) types.Severity {
	shortfall := (minimum - ratio) / minimum
	switch {
	case shortfall < 0.05:
		return types.SeverityModerate
	case shortfall < 0.15:
		return types.SeverityHigh
	default:
		return types.SeveritySevere
	}
}

func present(v *float64) bool {
	return v != nil && *v > 0
}

func mentionsAny(text string, keywords ...string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
