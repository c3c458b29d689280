package periodization

import (
	"fmt"

	"github.com/daniel/program-coach/internal/types"
)

// baseRPETargets are the per-phase-type intensity bands before adjustment
// for the individual's recovery and stress picture.
var baseRPETargets = []types.PhaseRPETarget{
	{PhaseType: "accumulation", MinRPE: 6.5, MaxRPE: 8.0},
	{PhaseType: "intensification", MinRPE: 7.5, MaxRPE: 9.0},
	{PhaseType: "realization", MinRPE: 8.0, MaxRPE: 9.5},
	{PhaseType: "deload", MinRPE: 5.0, MaxRPE: 6.0},
}

// rpeAdjustment shifts the intensity bands down for lifters whose recovery
// or stress picture warrants a more conservative ceiling.
func rpeAdjustment(enriched types.EnrichedProfile) float64 {
	adjustment := 0.0
	if enriched.RecoveryCapacity <= 4 {
		adjustment -= 0.5
	}
	if enriched.StressLevel >= 8 {
		adjustment -= 0.5
	}
	return adjustment
}

// autoregulation builds the RPE target bands and daily load-adjustment
// rules keyed to the morning readiness check.
func autoregulation(enriched types.EnrichedProfile) types.AutoregulationGuidance {
	adjustment := rpeAdjustment(enriched)

	targets := make([]types.PhaseRPETarget, len(baseRPETargets))
	for i, base := range baseRPETargets {
		targets[i] = types.PhaseRPETarget{
			PhaseType: base.PhaseType,
			MinRPE:    base.MinRPE + adjustment,
			MaxRPE:    base.MaxRPE + adjustment,
		}
	}

	return types.AutoregulationGuidance{
		RPETargets:      targets,
		ReadinessSignal: "pre-session readiness check: sleep quality, soreness, and motivation each rated 1-5",
		DailyAdjustments: []string{
			"readiness 12+ of 15: train as prescribed, top sets may move to the upper end of the RPE band",
			"readiness 8-11 of 15: reduce top-set load 5% and cap every set at the lower end of the RPE band",
			fmt.Sprintf("readiness below 8 of 15: reduce load 10%%, drop the last set of every exercise, cap RPE at %.1f", 7.0+adjustment),
		},
	}
}
