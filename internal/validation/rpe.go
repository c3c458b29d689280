package validation

import (
	"fmt"

	"github.com/daniel/program-coach/internal/types"
)

// CheckRPEPresence verifies that every training day carries at least one
// RPE target, so the autoregulation guidance has something to act on.
func CheckRPEPresence(program *types.TrainingProgram) []string {
	var violations []string
	for pi, phase := range program.Phases {
		for _, week := range phase.Weeks {
			for _, day := range week.Days {
				if day.IsRestDay {
					continue
				}
				if !dayHasRPE(day) {
					violations = append(violations, fmt.Sprintf(
						"phase %d week %d day %d: no exercise carries an RPE target",
						pi+1, week.WeekNumber, day.DayOfWeek))
				}
			}
		}
	}
	return violations
}

func dayHasRPE(day types.WorkoutDay) bool {
	for _, ex := range day.Exercises {
		if ex.RPE != nil {
			return true
		}
	}
	return false
}
