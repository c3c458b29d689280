package types

// PeriodizationModel names the volume/intensity template governing how the
// program changes across weeks and phases.
type PeriodizationModel string

// Periodization model constants define the closed set of selectable models.
const (
	ModelStrengthFocused    PeriodizationModel = "strength-focused"
	ModelHypertrophyFocused PeriodizationModel = "hypertrophy-focused"
	ModelLinear             PeriodizationModel = "linear"
	ModelBalanced           PeriodizationModel = "balanced"
)

// PhaseRPETarget expresses the autoregulation intensity band for one phase type.
type PhaseRPETarget struct {
	PhaseType string  `json:"phase_type"` // e.g. "accumulation", "intensification", "deload"
	MinRPE    float64 `json:"min_rpe"`
	MaxRPE    float64 `json:"max_rpe"`
}

// AutoregulationGuidance carries the RPE target bands per phase type and the
// daily load-adjustment rules keyed to a readiness signal.
type AutoregulationGuidance struct {
	RPETargets       []PhaseRPETarget `json:"rpe_targets"`
	ReadinessSignal  string           `json:"readiness_signal"`
	DailyAdjustments []string         `json:"daily_adjustments"`
}

// PeriodizationPlan is the selector's output: the chosen model, week-by-week
// progression-strategy text, and autoregulation guidance derived from the
// enriched profile's recovery and stress parameters.
type PeriodizationPlan struct {
	Model               PeriodizationModel     `json:"model"`
	ProgressionStrategy string                 `json:"progression_strategy"`
	Autoregulation      AutoregulationGuidance `json:"autoregulation"`
}
