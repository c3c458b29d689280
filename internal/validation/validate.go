package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daniel/program-coach/internal/schemas"
	"github.com/daniel/program-coach/internal/types"
)

// Constraints carries the per-request context the business rules need.
type Constraints struct {
	DaysPerWeek int
	Landmarks   types.VolumeLandmarks
	WeakPoints  *types.WeakPointResult
}

// Validate runs the two-tier pipeline on raw program JSON. The strict tier
// is the full schema plus every business rule; if anything in it fails, the
// relaxed tier only checks document shape and accepts the program with the
// strict failures recorded as caveats. A program failing both tiers comes
// back with Valid=false and a nil program.
//
// The error return is reserved for schema infrastructure problems; a
// non-conforming document is reported through the ValidationResult.
func Validate(rawJSON string, c Constraints) (*types.TrainingProgram, types.ValidationResult, error) {
	strictFailures, program, err := validateStrict(rawJSON, c)
	if err != nil {
		return nil, types.ValidationResult{}, err
	}
	if len(strictFailures) == 0 {
		return program, types.ValidationResult{Valid: true, SchemaTier: types.TierStrict}, nil
	}

	relaxedErr := schemas.ValidateProgram(types.TierRelaxed, rawJSON)
	if relaxedErr == nil {
		if program == nil {
			program = &types.TrainingProgram{}
			if err := json.Unmarshal([]byte(rawJSON), program); err != nil {
				return nil, types.ValidationResult{
					Valid:      false,
					Violations: append(strictFailures, fmt.Sprintf("program JSON does not decode: %v", err)),
				}, nil
			}
		}
		return program, types.ValidationResult{
			Valid:      true,
			SchemaTier: types.TierRelaxed,
			Caveats:    strictFailures,
		}, nil
	}

	var verr *schemas.ValidationError
	if errors.As(relaxedErr, &verr) {
		return nil, types.ValidationResult{
			Valid:      false,
			Violations: append(strictFailures, verr.Messages()...),
		}, nil
	}
	return nil, types.ValidationResult{}, relaxedErr
}

// validateStrict collects every strict-tier failure: schema violations first,
// then the business rules whenever the document decodes at all.
func validateStrict(rawJSON string, c Constraints) ([]string, *types.TrainingProgram, error) {
	var failures []string

	if err := schemas.ValidateProgram(types.TierStrict, rawJSON); err != nil {
		var verr *schemas.ValidationError
		if !errors.As(err, &verr) {
			return nil, nil, err
		}
		failures = append(failures, verr.Messages()...)
	}

	program := &types.TrainingProgram{}
	if err := json.Unmarshal([]byte(rawJSON), program); err != nil {
		failures = append(failures, fmt.Sprintf("program JSON does not decode: %v", err))
		return failures, nil, nil
	}

	failures = append(failures, CheckTrainingFrequency(program, c.DaysPerWeek)...)
	failures = append(failures, CheckAnchorLifts(program)...)
	failures = append(failures, CheckVolumeCompliance(program, c.Landmarks)...)
	failures = append(failures, CheckWeakPointCoverage(program, c.WeakPoints)...)
	failures = append(failures, CheckRPEPresence(program)...)

	return failures, program, nil
}
