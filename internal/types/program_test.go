package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReps_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Reps
	}{
		{name: "integer", input: `8`, want: Reps("8")},
		{name: "range string", input: `"8-12"`, want: Reps("8-12")},
		{name: "amrap", input: `"AMRAP"`, want: Reps("AMRAP")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Reps
			require.NoError(t, json.Unmarshal([]byte(tt.input), &r))
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestReps_UnmarshalJSON_Rejects(t *testing.T) {
	var r Reps
	err := json.Unmarshal([]byte(`{"min": 8}`), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reps must be an integer or a range string")

	err = json.Unmarshal([]byte(`1.5`), &r)
	assert.Error(t, err)
}

func twoWeekProgram() *TrainingProgram {
	day := func(dow int, rest bool, names ...string) WorkoutDay {
		d := WorkoutDay{DayOfWeek: dow, IsRestDay: rest, Exercises: []ExerciseDetail{}}
		for _, n := range names {
			d.Exercises = append(d.Exercises, ExerciseDetail{Name: n, Sets: 3, Reps: "5", Rest: "3 min"})
		}
		return d
	}
	return &TrainingProgram{
		ProgramName:        "Two Week Block",
		DurationWeeksTotal: 2,
		Phases: []TrainingPhase{
			{
				PhaseName:     "Accumulation",
				DurationWeeks: 2,
				Weeks: []TrainingWeek{
					{WeekNumber: 1, Days: []WorkoutDay{
						day(1, false, "Squat", "Bench Press"),
						day(2, true),
					}},
					{WeekNumber: 2, Days: []WorkoutDay{
						day(1, false, "Deadlift"),
						day(2, true),
					}},
				},
			},
		},
	}
}

func TestTrainingProgram_AllDays(t *testing.T) {
	program := twoWeekProgram()

	days := program.AllDays()
	require.Len(t, days, 4)
	assert.Equal(t, 1, days[0].DayOfWeek)
	assert.True(t, days[1].IsRestDay)
	assert.Equal(t, "Deadlift", days[2].Exercises[0].Name)
}

func TestTrainingProgram_ExerciseNames(t *testing.T) {
	program := twoWeekProgram()

	names := program.ExerciseNames()
	assert.Equal(t, []string{"Squat", "Bench Press", "Deadlift"}, names)
}

func TestTrainingProgram_ExerciseNames_Empty(t *testing.T) {
	program := &TrainingProgram{}
	assert.Empty(t, program.ExerciseNames())
}
