package validation

import (
	"fmt"
	"strings"

	"github.com/daniel/program-coach/internal/types"
	"github.com/daniel/program-coach/internal/weakpoints"
)

// CheckWeakPointCoverage verifies that every primary weak point has at least
// one of its corrective exercises somewhere in the program. The default
// general-balance result carries no correction obligation.
func CheckWeakPointCoverage(program *types.TrainingProgram, result *types.WeakPointResult) []string {
	if result == nil || result.IsDefault {
		return nil
	}

	programmed := make(map[string]bool)
	for _, name := range program.ExerciseNames() {
		programmed[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var violations []string
	for _, weakPoint := range result.PrimaryWeakPoints {
		correctives := weakpoints.CorrectivesFor(weakPoint)
		if len(correctives) == 0 {
			correctives = result.CorrectiveExercises
		}
		if !anyProgrammed(programmed, correctives) {
			violations = append(violations, fmt.Sprintf(
				"weak point %q has no corrective exercise in the program (expected one of: %s)",
				weakPoint, strings.Join(correctives, ", ")))
		}
	}
	return violations
}

func anyProgrammed(programmed map[string]bool, candidates []string) bool {
	for _, c := range candidates {
		if programmed[strings.ToLower(strings.TrimSpace(c))] {
			return true
		}
	}
	return false
}
