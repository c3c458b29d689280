package prompts

import (
	"fmt"
	"strings"

	"github.com/daniel/program-coach/internal/exercises"
	"github.com/daniel/program-coach/internal/types"
)

// generationFile is the template file all generation prompts come from.
const generationFile = "generation.json"

// Tier is the prompt complexity tier. The orchestrator walks the tiers in
// descending complexity when the backend fails.
type Tier string

// Complexity tier constants, ordered from richest to most minimal.
const (
	TierFull       Tier = "full"
	TierSimplified Tier = "simplified"
	TierBasic      Tier = "basic"
)

// Request carries everything the builder may embed into a generation
// prompt. Lower tiers use progressively smaller subsets of it.
type Request struct {
	Enriched      types.EnrichedProfile
	Landmarks     types.VolumeLandmarks
	WeakPoints    types.WeakPointResult
	Variations    types.PhasicVariationAnalysis
	Periodization types.PeriodizationPlan
	DurationWeeks int
}

// Build assembles the generation prompt for one complexity tier. A single
// parameterized builder keeps the three tiers from drifting apart.
func Build(tier Tier, req Request) (string, error) {
	template, err := Get(generationFile, string(tier))
	if err != nil {
		return "", fmt.Errorf("unknown prompt tier %q: %w", tier, err)
	}

	header := MustGet(generationFile, "system_header")
	contract := Format(MustGet(generationFile, "output_contract"), map[string]string{
		"AnchorLifts": strings.Join(exercises.CompoundLifts(), ", "),
	})

	profile := req.Enriched.Profile
	data := map[string]string{
		"SystemHeader":          header,
		"OutputContract":        contract,
		"ProfileSummary":        profileSummary(req.Enriched),
		"LandmarkTable":         landmarkTable(req.Landmarks),
		"WeakPointSummary":      weakPointSummary(req.WeakPoints),
		"VariationSummary":      variationSummary(req.Variations),
		"PeriodizationModel":    string(req.Periodization.Model),
		"ProgressionStrategy":   req.Periodization.ProgressionStrategy,
		"AutoregulationSummary": autoregulationSummary(req.Periodization.Autoregulation),
		"Goal":                  strings.ReplaceAll(string(profile.Goal), "_", " "),
		"Experience":            string(profile.Experience),
		"DaysPerWeek":           fmt.Sprintf("%d", profile.DaysPerWeek),
		"SessionMinutes":        fmt.Sprintf("%d", profile.SessionMinutes),
		"DurationWeeks":         fmt.Sprintf("%d", req.DurationWeeks),
		"MinWeeklySets":         fmt.Sprintf("%d", minMEV(req.Landmarks)),
		"MaxWeeklySets":         fmt.Sprintf("%d", maxMRV(req.Landmarks)),
	}

	return Format(template, data), nil
}

func profileSummary(enriched types.EnrichedProfile) string {
	profile := enriched.Profile
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Goal: %s\n", strings.ReplaceAll(string(profile.Goal), "_", " ")))
	sb.WriteString(fmt.Sprintf("Experience: %s (~%.1f years of training)\n", profile.Experience, enriched.TrainingAgeYears))
	sb.WriteString(fmt.Sprintf("Training days per week: %d, session length: %d minutes\n", profile.DaysPerWeek, profile.SessionMinutes))
	if len(profile.Equipment) > 0 {
		sb.WriteString(fmt.Sprintf("Available equipment: %s\n", strings.Join(profile.Equipment, ", ")))
	}
	if strings.TrimSpace(profile.Injuries) != "" {
		sb.WriteString(fmt.Sprintf("Injuries and limitations: %s\n", profile.Injuries))
	}
	sb.WriteString(fmt.Sprintf("Recovery capacity: %d/10, stress level: %d/10", enriched.RecoveryCapacity, enriched.StressLevel))
	return sb.String()
}

// landmarkTable renders the per-muscle MEV/MAV/MRV table in the fixed
// muscle-group order so identical inputs produce identical prompts.
func landmarkTable(landmarks types.VolumeLandmarks) string {
	var sb strings.Builder
	for _, mg := range types.AllMuscleGroups() {
		lm, ok := landmarks[mg]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: MEV %d, MAV %d, MRV %d\n", mg, lm.MEV, lm.MAV, lm.MRV))
	}
	return sb.String()
}

func weakPointSummary(result types.WeakPointResult) string {
	var sb strings.Builder
	if result.IsDefault {
		sb.WriteString("No specific imbalance identified; maintain general muscular balance.\n")
	}
	for _, issue := range result.Issues {
		sb.WriteString(fmt.Sprintf("- %s ratio is %.2f (minimum %.2f), severity %s\n",
			issue.Name, issue.ComputedRatio, issue.MinimumRatio, issue.Severity))
	}
	for _, wp := range result.PrimaryWeakPoints {
		sb.WriteString(fmt.Sprintf("- Weak point: %s\n", wp))
	}
	if len(result.CorrectiveExercises) > 0 {
		sb.WriteString(fmt.Sprintf("Corrective exercises (ranked): %s", strings.Join(result.CorrectiveExercises, ", ")))
	}
	return sb.String()
}

func variationSummary(analysis types.PhasicVariationAnalysis) string {
	if len(analysis.SuggestedVariations) == 0 {
		return analysis.Rationale
	}
	var sb strings.Builder
	sb.WriteString(analysis.Rationale + "\n")
	for _, v := range analysis.SuggestedVariations {
		sb.WriteString(fmt.Sprintf("- Use %s instead of %s\n", v.VariationExercise, v.OriginalExercise))
	}
	sb.WriteString("Do not reuse these previously assigned accessories: " + strings.Join(analysis.PreviousExercises, ", "))
	return sb.String()
}

func autoregulationSummary(guidance types.AutoregulationGuidance) string {
	var sb strings.Builder
	for _, target := range guidance.RPETargets {
		sb.WriteString(fmt.Sprintf("- %s phases: RPE %.1f-%.1f\n", target.PhaseType, target.MinRPE, target.MaxRPE))
	}
	sb.WriteString("Readiness signal: " + guidance.ReadinessSignal + "\n")
	for _, rule := range guidance.DailyAdjustments {
		sb.WriteString("- " + rule + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func minMEV(landmarks types.VolumeLandmarks) int {
	minimum := 0
	for _, lm := range landmarks {
		if minimum == 0 || lm.MEV < minimum {
			minimum = lm.MEV
		}
	}
	return minimum
}

func maxMRV(landmarks types.VolumeLandmarks) int {
	maximum := 0
	for _, lm := range landmarks {
		if lm.MRV > maximum {
			maximum = lm.MRV
		}
	}
	return maximum
}
