// Package schema checks document trees against the node vocabulary that
// downstream renderers accept.
package schema

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"staffdir/internal/mdast"
)

//go:embed nodes.schema.json
var nodesSchema string

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a JSON field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder

	sb.WriteString("node schema validation failed:\n")

	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}

	return sb.String()
}

// Source returns the embedded JSON Schema text.
func Source() string {
	return nodesSchema
}

// ValidateNodes marshals nodes to their wire form and validates the result.
func ValidateNodes(nodes []mdast.Node) error {
	data, err := mdast.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("failed to marshal nodes: %w", err)
	}

	return ValidateJSON(data)
}

// ValidateJSON validates an encoded node sequence.
func ValidateJSON(data []byte) error {
	s, err := nodeSchema()
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, e := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}

	return ve
}

func nodeSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(nodesSchema))
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile node schema: %w", compileErr)
		}
	})

	return compiled, compileErr
}
