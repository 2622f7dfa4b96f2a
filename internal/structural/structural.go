// Package structural is the first validation stage: it decodes raw input, detects its
// text encoding and checks the document against the ISA-JSON schema.
package structural

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/scan-io-git/isaval/internal/formats"
	"github.com/scan-io-git/isaval/internal/isajson"
	"github.com/scan-io-git/isaval/internal/report"
	isaerrors "github.com/scan-io-git/isaval/pkg/errors"
)

// SchemaURL identifies the embedded investigation schema.
const SchemaURL = "https://isa-specs.readthedocs.io/schemas/isa_investigation_schema.json"

//go:embed schemas/isa_investigation_schema.json
var investigationSchema []byte

// Result is a document that passed structural validation.
type Result struct {
	Document *isajson.Investigation
	Encoding formats.Encoding
	Findings []report.Finding
}

// Validator holds a compiled schema. It is safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles the schema at schemaPath, or the embedded schema when schemaPath is empty.
func New(schemaPath string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	url := schemaPath
	if url == "" {
		url = SchemaURL
		if err := compiler.AddResource(url, bytes.NewReader(investigationSchema)); err != nil {
			return nil, fmt.Errorf("failed to load embedded schema: %w", err)
		}
	}

	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %q: %w", url, err)
	}
	return &Validator{schema: schema}, nil
}

// Validate runs the structural stage over data read from source.
// It returns a *errors.ParseError for undecodable input and a *errors.SchemaError for
// a document that does not conform to the schema.
func (v *Validator) Validate(source string, data []byte) (*Result, error) {
	text, enc, err := formats.DecodeToUTF8(data)
	if err != nil {
		return nil, isaerrors.NewParseError(source, err)
	}

	instance, err := decodeInstance(text)
	if err != nil {
		return nil, isaerrors.NewParseError(source, err)
	}

	if err := v.schema.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, isaerrors.NewSchemaError(violations(ve)...)
		}
		return nil, isaerrors.NewSchemaError(isaerrors.Violation{Message: err.Error()})
	}

	doc, err := isajson.Decode(text)
	if err != nil {
		return nil, isaerrors.NewSchemaError(isaerrors.Violation{Message: err.Error()})
	}

	result := &Result{Document: doc, Encoding: enc}
	if enc != formats.UTF8 {
		result.Findings = append(result.Findings, report.EncodingWarning())
	}
	return result, nil
}

// decodeInstance decodes exactly one JSON value, keeping numbers as json.Number.
func decodeInstance(text []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	var instance interface{}
	if err := dec.Decode(&instance); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid character after top-level value at offset %d", dec.InputOffset())
	}
	return instance, nil
}

// violations flattens a validation error tree into its leaf causes.
func violations(ve *jsonschema.ValidationError) []isaerrors.Violation {
	if len(ve.Causes) == 0 {
		return []isaerrors.Violation{{
			InstanceLocation: ve.InstanceLocation,
			KeywordLocation:  ve.KeywordLocation,
			Message:          ve.Message,
		}}
	}
	var out []isaerrors.Violation
	for _, cause := range ve.Causes {
		out = append(out, violations(cause)...)
	}
	return out
}
