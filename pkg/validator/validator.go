// Package validator validates ISA-JSON investigation documents.
//
// Validation runs in two tiers. Input that is not JSON, or that does not conform to the
// ISA-JSON schema, is a hard failure returned as an error and no report is produced.
// Every other problem is a finding collected in the returned report:
//
//	v, err := validator.New(validator.WithBaseDir("data"))
//	if err != nil {
//		return err
//	}
//	rep, err := v.Validate(f)
//	if errors.Is(err, isaerrors.ErrSchema) {
//		...
//	}
//	fmt.Print(rep.Log())
package validator

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/isaval/internal/fields"
	"github.com/scan-io-git/isaval/internal/refindex"
	"github.com/scan-io-git/isaval/internal/report"
	"github.com/scan-io-git/isaval/internal/resolver"
	"github.com/scan-io-git/isaval/internal/structural"
	"github.com/scan-io-git/isaval/internal/usage"
	"github.com/scan-io-git/isaval/pkg/files"
)

type (
	// Report is the frozen result of a validation run.
	Report = report.Report
	// Finding is a single error or warning in a Report.
	Finding = report.Finding
	// Severity classifies a Finding.
	Severity = report.Severity
)

const (
	SeverityError   = report.SeverityError
	SeverityWarning = report.SeverityWarning
)

// Validator runs the validation passes over documents.
// It holds no per-document state and may be shared across goroutines.
type Validator struct {
	structural *structural.Validator
	fileExists fields.FileExists
	source     string
	logger     hclog.Logger
}

// New compiles the schema and prepares a Validator.
func New(opts ...Option) (*Validator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sv, err := structural.New(o.schemaPath)
	if err != nil {
		return nil, err
	}

	v := &Validator{
		structural: sv,
		source:     o.source,
		logger:     o.logger,
	}
	switch {
	case o.skipFiles:
	case o.fileExists != nil:
		v.fileExists = o.fileExists
	default:
		v.fileExists = files.NewChecker(o.baseDir).Exists
	}
	return v, nil
}

// Validate reads the whole document from r and validates it.
func (v *Validator) Validate(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return v.ValidateBytes(data)
}

// ValidateBytes validates an in-memory document.
// It returns a *errors.ParseError or *errors.SchemaError on hard failure, and a frozen
// report otherwise.
func (v *Validator) ValidateBytes(data []byte) (*Report, error) {
	v.logger.Debug("running structural validation", "source", v.source, "size", len(data))
	result, err := v.structural.Validate(v.source, data)
	if err != nil {
		v.logger.Debug("structural validation failed", "error", err)
		return nil, err
	}

	idx := refindex.Build(result.Document)
	v.logger.Trace("reference index built",
		"encoding", result.Encoding,
		"declarations", len(idx.Declarations()),
		"references", len(idx.References()))

	rep := report.New()
	passes := []struct {
		name     string
		findings []report.Finding
	}{
		{"structural", result.Findings},
		{"resolver", resolver.Resolve(idx)},
		{"usage", usage.Audit(idx)},
		{"fields", fields.All(result.Document, v.fileExists)},
	}
	for _, pass := range passes {
		v.logger.Trace("pass finished", "pass", pass.name, "findings", len(pass.findings))
		if err := rep.RecordAll(pass.findings); err != nil {
			return nil, fmt.Errorf("failed to record %s findings: %w", pass.name, err)
		}
	}
	rep.Freeze()

	v.logger.Debug("validation finished", "errors", len(rep.Errors()), "warnings", len(rep.Warnings()))
	return rep, nil
}

// Validate validates the document read from r with a Validator built from opts.
func Validate(r io.Reader, opts ...Option) (*Report, error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return v.Validate(r)
}

