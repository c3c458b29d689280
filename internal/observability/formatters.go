// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniel/program-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEnrichedProfile outputs the derived training attributes.
func (p *Printer) PrintEnrichedProfile(enriched *types.EnrichedProfile) {
	if enriched == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Goal:              %s\n", enriched.Profile.Goal))
	sb.WriteString(fmt.Sprintf("Experience:        %s\n", enriched.Profile.Experience))
	sb.WriteString(fmt.Sprintf("Training age:      %.1f years\n", enriched.TrainingAgeYears))
	sb.WriteString(fmt.Sprintf("Recovery capacity: %d/10\n", enriched.RecoveryCapacity))
	sb.WriteString(fmt.Sprintf("Stress level:      %d/10\n", enriched.StressLevel))
	sb.WriteString(fmt.Sprintf("Volume tolerance:  %.2fx", enriched.VolumeTolerance))

	p.printBox("ENRICHED PROFILE", sb.String())
}

// PrintLandmarks outputs the per-muscle volume landmark table in the fixed
// muscle-group order.
func (p *Printer) PrintLandmarks(landmarks types.VolumeLandmarks) {
	if len(landmarks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %5s %5s %5s\n", "Muscle", "MEV", "MAV", "MRV"))
	for _, muscle := range types.AllMuscleGroups() {
		lm, ok := landmarks[muscle]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s %5d %5d %5d\n", muscle, lm.MEV, lm.MAV, lm.MRV))
	}

	p.printBox("VOLUME LANDMARKS (weekly sets)", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeakPoints outputs the weak-point analysis with ratio findings and
// corrective exercises.
func (p *Printer) PrintWeakPoints(result *types.WeakPointResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.IsDefault {
		sb.WriteString("No specific weak points identified.\n\n")
	}

	if len(result.Issues) > 0 {
		sb.WriteString("Strength ratio findings:\n")
		for _, issue := range result.Issues {
			sb.WriteString(fmt.Sprintf("  • %s = %.2f (min %.2f) [%s]\n",
				issue.Name, issue.ComputedRatio, issue.MinimumRatio, issue.Severity))
		}
		sb.WriteString("\n")
	}

	if len(result.PrimaryWeakPoints) > 0 {
		sb.WriteString("Primary weak points:\n")
		for _, wp := range result.PrimaryWeakPoints {
			sb.WriteString(fmt.Sprintf("  • %s\n", wp))
		}
		sb.WriteString("\n")
	}

	if len(result.CorrectiveExercises) > 0 {
		sb.WriteString("Corrective exercises:\n")
		count := min(len(result.CorrectiveExercises), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.CorrectiveExercises[i]))
		}
		if len(result.CorrectiveExercises) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.CorrectiveExercises)-maxItemsToShow))
		}
	}

	p.printBox("WEAK POINT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVariations outputs the phasic variation plan.
func (p *Printer) PrintVariations(analysis *types.PhasicVariationAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	if len(analysis.SuggestedVariations) == 0 {
		sb.WriteString(analysis.Rationale)
	} else {
		for _, v := range analysis.SuggestedVariations {
			sb.WriteString(fmt.Sprintf("  %s → %s\n", v.OriginalExercise, v.VariationExercise))
		}
		sb.WriteString(fmt.Sprintf("\n%s", analysis.Rationale))
	}

	p.printBox("EXERCISE VARIATIONS", sb.String())
}

// PrintPeriodization outputs the selected model and autoregulation bands.
func (p *Printer) PrintPeriodization(plan *types.PeriodizationPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Model: %s\n\n", plan.Model))
	sb.WriteString("RPE targets:\n")
	for _, target := range plan.Autoregulation.RPETargets {
		sb.WriteString(fmt.Sprintf("  %-16s RPE %.1f-%.1f\n", target.PhaseType, target.MinRPE, target.MaxRPE))
	}

	p.printBox("PERIODIZATION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs the validation outcome including the tier
// that matched and any caveats or violations.
func (p *Printer) PrintValidationReport(result *types.ValidationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.Valid {
		sb.WriteString(fmt.Sprintf("VALID (%s schema)\n", result.SchemaTier))
	} else {
		sb.WriteString("INVALID\n")
	}

	if len(result.Caveats) > 0 {
		sb.WriteString("\nCaveats:\n")
		for _, c := range result.Caveats {
			sb.WriteString(fmt.Sprintf("  • %s\n", c))
		}
	}
	if len(result.Violations) > 0 {
		sb.WriteString("\nViolations:\n")
		for _, v := range result.Violations {
			sb.WriteString(fmt.Sprintf("  • %s\n", v))
		}
	}

	p.printBox("VALIDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProgramSummary outputs a compact overview of a generated program.
func (p *Printer) PrintProgramSummary(program *types.TrainingProgram) {
	if program == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", program.ProgramName))
	sb.WriteString(fmt.Sprintf("Duration: %d weeks\n", program.DurationWeeksTotal))
	sb.WriteString(fmt.Sprintf("Phases:   %d\n", len(program.Phases)))

	for _, phase := range program.Phases {
		sb.WriteString(fmt.Sprintf("  • %s (%d weeks)\n", phase.PhaseName, phase.DurationWeeks))
	}

	p.printBox("GENERATED PROGRAM", strings.TrimSuffix(sb.String(), "\n"))
}
