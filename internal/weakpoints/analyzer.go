package weakpoints

import (
	"sort"

	"github.com/daniel/program-coach/internal/types"
)

// Input carries the analyzer's inputs: the four optional lift estimates
// plus the profile context the heuristic rules key on.
type Input struct {
	Lifts      types.LiftEstimates
	Experience types.ExperienceLevel
	Goal       types.Goal
	Injuries   string
	WeightUnit types.WeightUnit
}

// InputFromProfile builds an analyzer Input from an intake snapshot.
func InputFromProfile(profile types.UserProfile) Input {
	return Input{
		Lifts:      profile.Lifts,
		Experience: profile.Experience,
		Goal:       profile.Goal,
		Injuries:   profile.Injuries,
		WeightUnit: profile.WeightUnit,
	}
}

// Analyze evaluates the fixed rule list against the input and assembles the
// prioritized weak-point result. Fewer than two lift estimates, or a run
// that generates no findings, yields the default general-balance result;
// insufficient strength data is not an error.
func Analyze(in Input) types.WeakPointResult {
	if in.Lifts.Count() < 2 {
		return DefaultResult()
	}

	var findings []*finding
	for _, r := range ruleSet {
		f := r.apply(in)
		if f == nil {
			continue
		}
		f.priority = r.priority
		findings = append(findings, f)
	}

	if len(findings) == 0 {
		return DefaultResult()
	}

	// Lowest priority number wins; exact ties keep declaration order.
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].priority < findings[j].priority
	})

	result := types.WeakPointResult{}
	seenWeakPoints := make(map[string]bool)
	seenCorrectives := make(map[string]bool)
	for _, f := range findings {
		if f.issue != nil {
			result.Issues = append(result.Issues, *f.issue)
		}
		if !seenWeakPoints[f.weakPoint] {
			seenWeakPoints[f.weakPoint] = true
			result.PrimaryWeakPoints = append(result.PrimaryWeakPoints, f.weakPoint)
		}
		for _, corrective := range f.correctives {
			if !seenCorrectives[corrective] {
				seenCorrectives[corrective] = true
				result.CorrectiveExercises = append(result.CorrectiveExercises, corrective)
			}
		}
	}
	return result
}

// DefaultResult is the single general-balance result used when the lift
// data is insufficient or every rule came back empty.
func DefaultResult() types.WeakPointResult {
	return types.WeakPointResult{
		PrimaryWeakPoints:   []string{"General Muscular Balance"},
		CorrectiveExercises: []string{"Chest-Supported Row", "Romanian Deadlift", "Plank"},
		IsDefault:           true,
	}
}

// CorrectivesFor returns the ranked corrective exercises associated with a
// primary weak point name, or nil for an unknown name.
func CorrectivesFor(weakPoint string) []string {
	return correctivesByWeakPoint[weakPoint]
}

// correctivesByWeakPoint mirrors the corrective lists in ruleSet for direct
// lookup by the program validator. The analyzer test asserts the two stay
// in sync.
var correctivesByWeakPoint = map[string][]string{
	"Hip and Knee Stability":       {"Bulgarian Split Squat", "Single-Leg Romanian Deadlift", "Glute Bridge"},
	"Spinal Stability":             {"Bird Dog", "Dead Bug", "Plank"},
	"Shoulder Stability":           {"Face Pull", "Rear Delt Fly", "Cable Lateral Raise"},
	"Posterior Chain Weakness":     {"Romanian Deadlift", "Good Morning", "Back Extension", "Glute Ham Raise"},
	"Upper Body Pressing Weakness": {"Close-Grip Bench Press", "Dip", "Incline Dumbbell Press"},
	"Overhead Pressing Weakness":   {"Seated Dumbbell Press", "Lateral Raise", "Face Pull"},
	"Push/Pull Imbalance":          {"Chest-Supported Row", "Face Pull", "Dumbbell Row"},
	"Core Stability":               {"Ab Wheel Rollout", "Pallof Press", "Hanging Leg Raise"},
	"Hypertrophy Specialization":   {"Incline Dumbbell Curl", "Cable Lateral Raise", "Leg Extension", "Seated Leg Curl"},
	"General Muscular Balance":     {"Chest-Supported Row", "Romanian Deadlift", "Plank"},
}
