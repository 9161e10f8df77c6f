// Package schema validates resume documents against JSON Schema
// definitions using standard JSON Schema semantics (type, required, enum,
// pattern constraints as declared in the schema).
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaLoad indicates the schema itself could not be compiled
// (unresolvable $ref, invalid schema syntax).
var ErrSchemaLoad = errors.New("failed to load schema")

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports schema violations with their locations in the
// document. Every violation found is retained, not just the first.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks doc against schemaDoc, a decoded JSON Schema document.
// Returns nil when the document conforms, a *ValidationError describing
// every violation otherwise, or an ErrSchemaLoad-wrapped error when the
// schema itself is broken.
func Validate(doc, schemaDoc map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schemaDoc),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaLoad, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
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
