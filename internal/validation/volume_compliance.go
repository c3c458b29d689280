package validation

import (
	"fmt"

	"github.com/daniel/program-coach/internal/exercises"
	"github.com/daniel/program-coach/internal/types"
)

// CheckVolumeCompliance verifies that each week's aggregate set count per
// muscle group stays within that muscle's [MEV, MRV] window. Exercises not
// present in the catalog contribute nothing; their volume cannot be
// attributed to a muscle group.
func CheckVolumeCompliance(program *types.TrainingProgram, landmarks types.VolumeLandmarks) []string {
	var violations []string
	for pi, phase := range program.Phases {
		for _, week := range phase.Weeks {
			totals := weeklySetTotals(week)
			for _, muscle := range types.AllMuscleGroups() {
				landmark, ok := landmarks[muscle]
				if !ok {
					continue
				}
				sets := totals[muscle]
				switch {
				case sets < landmark.MEV:
					violations = append(violations, fmt.Sprintf(
						"phase %d week %d: %s receives %d weekly sets, below MEV %d",
						pi+1, week.WeekNumber, muscle, sets, landmark.MEV))
				case sets > landmark.MRV:
					violations = append(violations, fmt.Sprintf(
						"phase %d week %d: %s receives %d weekly sets, above MRV %d",
						pi+1, week.WeekNumber, muscle, sets, landmark.MRV))
				}
			}
		}
	}
	return violations
}

// weeklySetTotals attributes each exercise's sets to every muscle group the
// catalog lists for it.
func weeklySetTotals(week types.TrainingWeek) map[types.MuscleGroup]int {
	totals := make(map[types.MuscleGroup]int)
	for _, day := range week.Days {
		if day.IsRestDay {
			continue
		}
		for _, ex := range day.Exercises {
			for _, muscle := range exercises.MuscleGroupsFor(ex.Name) {
				totals[muscle] += ex.Sets
			}
		}
	}
	return totals
}
