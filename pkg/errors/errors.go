package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Sentinels for branching on the kind of hard failure with errors.Is.
var (
	ErrParse  = stderrors.New("document is not valid JSON")
	ErrSchema = stderrors.New("document does not conform to the ISA-JSON schema")
)

// ParseError reports input that could not be decoded as JSON. No report exists for such input.
type ParseError struct {
	Source string
	Err    error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrParse, e.Source, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a ParseError for the named source.
func NewParseError(source string, err error) *ParseError {
	return &ParseError{Source: source, Err: err}
}

// Violation is a single structural schema violation.
type Violation struct {
	InstanceLocation string `json:"instance_location"`
	KeywordLocation  string `json:"keyword_location"`
	Message          string `json:"message"`
}

// String renders the violation as "<instance>: <message>".
func (v Violation) String() string {
	location := v.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, v.Message)
}

// SchemaError reports a document that failed structural validation.
// Semantic passes never run for such a document.
type SchemaError struct {
	Violations []Violation
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	if len(e.Violations) == 0 {
		return ErrSchema.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrSchema, strings.Join(parts, "; "))
}

// Is matches ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError creates a SchemaError carrying the given violations.
func NewSchemaError(violations ...Violation) *SchemaError {
	return &SchemaError{Violations: violations}
}
