package validation

import (
	"fmt"

	"github.com/daniel/program-coach/internal/exercises"
	"github.com/daniel/program-coach/internal/types"
)

// CheckAnchorLifts verifies that every training day opens with a recognized
// compound movement. Rest days are exempt; a non-rest day with no exercises
// is itself a violation.
func CheckAnchorLifts(program *types.TrainingProgram) []string {
	var violations []string
	for pi, phase := range program.Phases {
		for _, week := range phase.Weeks {
			for _, day := range week.Days {
				if day.IsRestDay {
					continue
				}
				if len(day.Exercises) == 0 {
					violations = append(violations, fmt.Sprintf(
						"phase %d week %d day %d: training day has no exercises",
						pi+1, week.WeekNumber, day.DayOfWeek))
					continue
				}
				first := day.Exercises[0].Name
				if !exercises.IsCompound(first) {
					violations = append(violations, fmt.Sprintf(
						"phase %d week %d day %d: first exercise %q is not an anchor lift",
						pi+1, week.WeekNumber, day.DayOfWeek, first))
				}
			}
		}
	}
	return violations
}
