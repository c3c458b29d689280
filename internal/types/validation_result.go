package types

// SchemaTier identifies which schema ultimately matched a generated program.
type SchemaTier string

// Schema tier constants
const (
	TierStrict  SchemaTier = "strict"
	TierRelaxed SchemaTier = "relaxed"
)

// ValidationResult records the outcome of the two-tier validation pipeline.
// A program accepted under the relaxed tier carries the strict tier's
// failures as caveats rather than rejections.
type ValidationResult struct {
	Valid      bool       `json:"valid"`
	SchemaTier SchemaTier `json:"schema_tier"`
	Violations []string   `json:"violations,omitempty"`
	Caveats    []string   `json:"caveats,omitempty"`
}

// ProgramMetadata is the derived scientific metadata handed to the
// persistence collaborator alongside a validated program.
type ProgramMetadata struct {
	Landmarks          VolumeLandmarks         `json:"landmarks"`
	WeakPoints         WeakPointResult         `json:"weak_points"`
	Variations         PhasicVariationAnalysis `json:"variations"`
	PeriodizationModel PeriodizationModel      `json:"periodization_model"`
	AttemptCount       int                     `json:"attempt_count"`
	SchemaTier         SchemaTier              `json:"schema_tier"`
	CatalogVersion     string                  `json:"catalog_version"`
}
