package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniel/program-coach/internal/types"
)

func TestPrintLandmarks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	landmarks := types.VolumeLandmarks{
		types.MuscleChest: {MEV: 8, MAV: 14, MRV: 22},
		types.MuscleBack:  {MEV: 10, MAV: 16, MRV: 25},
	}

	p.PrintLandmarks(landmarks)
	output := buf.String()

	assert.Contains(t, output, "VOLUME LANDMARKS")
	assert.Contains(t, output, "chest")
	assert.Contains(t, output, "back")
	assert.Contains(t, output, "22")
}

func TestPrintLandmarks_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLandmarks(nil)

	assert.Empty(t, buf.String())
}

func TestPrintWeakPoints(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.WeakPointResult{
		Issues: []types.StrengthRatioIssue{
			{Name: "deadlift:squat", ComputedRatio: 1.0, MinimumRatio: 1.1, Severity: types.SeverityModerate},
		},
		PrimaryWeakPoints:   []string{"Posterior Chain Weakness"},
		CorrectiveExercises: []string{"Romanian Deadlift", "Good Morning"},
	}

	p.PrintWeakPoints(result)
	output := buf.String()

	assert.Contains(t, output, "WEAK POINT ANALYSIS")
	assert.Contains(t, output, "deadlift:squat")
	assert.Contains(t, output, "Posterior Chain Weakness")
	assert.Contains(t, output, "Romanian Deadlift")
}

func TestPrintWeakPoints_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWeakPoints(nil)

	assert.Empty(t, buf.String())
}

func TestPrintPeriodization(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &types.PeriodizationPlan{
		Model: types.ModelStrengthFocused,
		Autoregulation: types.AutoregulationGuidance{
			RPETargets: []types.PhaseRPETarget{
				{PhaseType: "accumulation", MinRPE: 6.5, MaxRPE: 8},
			},
		},
	}

	p.PrintPeriodization(plan)
	output := buf.String()

	assert.Contains(t, output, "PERIODIZATION PLAN")
	assert.Contains(t, output, "strength-focused")
	assert.Contains(t, output, "6.5-8.0")
}

func TestPrintValidationReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ValidationResult{
		Valid:      true,
		SchemaTier: types.TierRelaxed,
		Caveats:    []string{"chest receives 2 weekly sets, below MEV 8"},
	}

	p.PrintValidationReport(result)
	output := buf.String()

	assert.Contains(t, output, "VALID (relaxed schema)")
	assert.Contains(t, output, "below MEV")
}

func TestPrintProgramSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	program := &types.TrainingProgram{
		ProgramName:        "Strength Block",
		DurationWeeksTotal: 8,
		Phases: []types.TrainingPhase{
			{PhaseName: "Accumulation", DurationWeeks: 4},
			{PhaseName: "Intensification", DurationWeeks: 4},
		},
	}

	p.PrintProgramSummary(program)
	output := buf.String()

	assert.Contains(t, output, "GENERATED PROGRAM")
	assert.Contains(t, output, "Strength Block")
	assert.Contains(t, output, "Accumulation")
}
