package types

import (
	"fmt"
	"strings"
)

// ProfileIncompleteError indicates the intake profile is missing fields the
// engine cannot derive anything without. It is never retried.
type ProfileIncompleteError struct {
	MissingFields []string
}

func (e *ProfileIncompleteError) Error() string {
	return fmt.Sprintf("profile incomplete: missing %s", strings.Join(e.MissingFields, ", "))
}

// GenerationFailure is the terminal error returned after the prompt
// orchestrator has exhausted its complexity tier ladder.
type GenerationFailure struct {
	Attempts int
	LastErr  error
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("program generation failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *GenerationFailure) Unwrap() error {
	return e.LastErr
}

// ValidationFailure indicates both schema tiers rejected the generated
// program. The program is discarded and never persisted.
type ValidationFailure struct {
	Violations []string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("program failed validation: %s", strings.Join(e.Violations, "; "))
}

// PersistenceFailure wraps an error reported by the persistence
// collaborator. It is surfaced to the caller unchanged.
type PersistenceFailure struct {
	Op  string
	Err error
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceFailure) Unwrap() error {
	return e.Err
}
