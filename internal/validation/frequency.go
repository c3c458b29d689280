// Package validation checks generated training programs against the
// constraints derived from the user's profile and volume landmarks.
package validation

import (
	"fmt"

	"github.com/daniel/program-coach/internal/types"
)

// CheckTrainingFrequency verifies that every week prescribes exactly the
// number of non-rest days the user asked for.
func CheckTrainingFrequency(program *types.TrainingProgram, daysPerWeek int) []string {
	var violations []string
	for pi, phase := range program.Phases {
		for _, week := range phase.Weeks {
			trainingDays := 0
			for _, day := range week.Days {
				if !day.IsRestDay {
					trainingDays++
				}
			}
			if trainingDays != daysPerWeek {
				violations = append(violations, fmt.Sprintf(
					"phase %d week %d: %d training days, user requested %d",
					pi+1, week.WeekNumber, trainingDays, daysPerWeek))
			}
		}
	}
	return violations
}
