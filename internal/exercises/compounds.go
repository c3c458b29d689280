package exercises

import "strings"

// compoundLifts is the canonical compound-lift name list. An exercise whose
// name contains (or is contained by) one of these entries is treated as a
// compound movement: it anchors a training day and is never swapped by the
// variation planner, preserving specificity.
var compoundLifts = []string{
	"Squat",
	"Bench Press",
	"Deadlift",
	"Overhead Press",
	"Barbell Row",
	"Pull-Up",
	"Chin-Up",
}

// CompoundLifts returns a copy of the canonical compound-lift list.
func CompoundLifts() []string {
	out := make([]string, len(compoundLifts))
	copy(out, compoundLifts)
	return out
}

// IsCompound reports whether the exercise name matches the canonical
// compound list by case-insensitive substring in either direction, so
// "Paused Bench Press" and "Bench" both classify as compound.
func IsCompound(exercise string) bool {
	name := strings.ToLower(strings.TrimSpace(exercise))
	if name == "" {
		return false
	}
	for _, lift := range compoundLifts {
		canonical := strings.ToLower(lift)
		if strings.Contains(name, canonical) || strings.Contains(canonical, name) {
			return true
		}
	}
	return false
}
