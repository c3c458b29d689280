// Package schemas embeds the JSON Schemas for generated training programs
// and validates raw model output against them.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/daniel/program-coach/internal/types"
)

//go:embed program_strict.json program_relaxed.json
var schemaFS embed.FS

// schemaFile maps a validation tier to its embedded schema document.
var schemaFile = map[types.SchemaTier]string{
	types.TierStrict:  "program_strict.json",
	types.TierRelaxed: "program_relaxed.json",
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Tier   types.SchemaTier
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s schema validation failed:\n", ve.Tier)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Messages flattens the field errors into "field: message" strings.
func (ve *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return msgs
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateProgram validates raw program JSON against the schema for the given
// tier. It returns nil when the document conforms, a *ValidationError when it
// does not, and a *SchemaLoadError when the schema itself cannot be used.
func ValidateProgram(tier types.SchemaTier, jsonContent string) error {
	name, ok := schemaFile[tier]
	if !ok {
		return &SchemaLoadError{Name: string(tier), Message: "unknown schema tier"}
	}

	schemaContent, err := schemaFS.ReadFile(name)
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "embedded schema missing", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Tier:   tier,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
