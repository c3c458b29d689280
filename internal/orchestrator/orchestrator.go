// Package orchestrator drives program generation through the backend,
// walking a descending ladder of prompt complexity tiers when the backend
// fails outright.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/daniel/program-coach/internal/llm"
	"github.com/daniel/program-coach/internal/prompts"
	"github.com/daniel/program-coach/internal/types"
	"github.com/daniel/program-coach/internal/validation"
)

// state is the orchestrator's position on the complexity ladder.
type state int

const (
	stateFull state = iota
	stateSimplified
	stateBasic
	stateFailed
)

// next advances down the ladder. Basic is the last rung.
func (s state) next() state {
	switch s {
	case stateFull:
		return stateSimplified
	case stateSimplified:
		return stateBasic
	default:
		return stateFailed
	}
}

func (s state) promptTier() prompts.Tier {
	switch s {
	case stateFull:
		return prompts.TierFull
	case stateSimplified:
		return prompts.TierSimplified
	default:
		return prompts.TierBasic
	}
}

// Result is a successfully generated and validated program, with enough
// bookkeeping to explain how the ladder got there.
type Result struct {
	Program      *types.TrainingProgram
	Validation   types.ValidationResult
	RawJSON      string
	AttemptCount int
	PromptTier   prompts.Tier
}

// Orchestrator holds the backend client and the provider model tier every
// attempt uses. Attempts are sequential; only the last error accumulates
// across them.
type Orchestrator struct {
	client    llm.Client
	modelTier llm.ModelTier
}

// New creates an orchestrator using the standard provider model tier.
func New(client llm.Client) *Orchestrator {
	return &Orchestrator{client: client, modelTier: llm.TierStandard}
}

// WithModelTier overrides the provider model tier used for every attempt.
func (o *Orchestrator) WithModelTier(tier llm.ModelTier) *Orchestrator {
	o.modelTier = tier
	return o
}

// Generate walks the ladder until the backend returns a structured payload
// or the ladder is exhausted. A hard backend failure, or a payload that is
// not JSON, advances to the next tier; a payload that decodes but fails both
// validation tiers is terminal and returns ValidationFailure without
// consuming further attempts.
func (o *Orchestrator) Generate(ctx context.Context, req prompts.Request, constraints validation.Constraints) (*Result, error) {
	var lastErr error
	attempts := 0

	for s := stateFull; s != stateFailed; s = s.next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tier := s.promptTier()
		prompt, err := prompts.Build(tier, req)
		if err != nil {
			return nil, fmt.Errorf("building %s prompt: %w", tier, err)
		}

		attempts++
		raw, err := o.client.GenerateJSON(ctx, prompt, o.modelTier)
		if err != nil {
			lastErr = fmt.Errorf("%s tier: %w", tier, err)
			continue
		}

		raw = llm.CleanJSONBlock(raw)
		if !json.Valid([]byte(raw)) {
			lastErr = fmt.Errorf("%s tier: backend returned an unstructured payload", tier)
			continue
		}

		program, result, err := validation.Validate(raw, constraints)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, &types.ValidationFailure{Violations: result.Violations}
		}

		return &Result{
			Program:      program,
			Validation:   result,
			RawJSON:      raw,
			AttemptCount: attempts,
			PromptTier:   tier,
		}, nil
	}

	return nil, &types.GenerationFailure{Attempts: attempts, LastErr: lastErr}
}
