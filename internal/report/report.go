package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// LoggerName prefixes every line of the log view.
const LoggerName = "isajson"

// ErrReportFrozen is returned when a finding is recorded after the report was handed out.
var ErrReportFrozen = errors.New("report is frozen")

// Report collects findings of one validation run in recording order.
// Both the log view and the structured view are derived from the same findings.
type Report struct {
	findings []Finding
	frozen   bool
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Record appends a finding.
func (r *Report) Record(f Finding) error {
	if r.frozen {
		return ErrReportFrozen
	}
	if !f.Severity.IsValid() {
		return fmt.Errorf("invalid severity %q for finding %q", f.Severity, f.Message)
	}
	r.findings = append(r.findings, f)
	return nil
}

// RecordAll appends findings in order, stopping at the first rejected one.
func (r *Report) RecordAll(findings []Finding) error {
	for _, f := range findings {
		if err := r.Record(f); err != nil {
			return err
		}
	}
	return nil
}

// Freeze makes the report read-only.
func (r *Report) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Report) Frozen() bool {
	return r.frozen
}

// Len returns the number of recorded findings.
func (r *Report) Len() int {
	return len(r.findings)
}

// Findings returns a copy of all findings in recording order.
func (r *Report) Findings() []Finding {
	out := make([]Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// Errors returns the error findings in recording order.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the warning findings in recording order.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

// HasErrors reports whether at least one error was recorded.
func (r *Report) HasErrors() bool {
	for _, f := range r.findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether at least one warning was recorded.
func (r *Report) HasWarnings() bool {
	for _, f := range r.findings {
		if f.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

func (r *Report) filter(severity Severity) []Finding {
	out := make([]Finding, 0, len(r.findings))
	for _, f := range r.findings {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}

// WriteLog renders one line per finding, errors and warnings interleaved in recording order.
// Every line contains the literal finding message.
func (r *Report) WriteLog(w io.Writer) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:        LoggerName,
		Level:       hclog.Trace,
		Output:      w,
		DisableTime: true,
	})
	for _, f := range r.findings {
		args := []interface{}{"code", string(f.Code)}
		if f.Location != "" {
			args = append(args, "location", f.Location)
		}
		switch f.Severity {
		case SeverityError:
			logger.Error(f.Message, args...)
		default:
			logger.Warn(f.Message, args...)
		}
	}
	return nil
}

// Log returns the log view as a string.
func (r *Report) Log() string {
	var buf bytes.Buffer
	_ = r.WriteLog(&buf)
	return buf.String()
}

// Entry is one finding in the structured view.
type Entry struct {
	Message  string `json:"message"`
	Code     string `json:"code"`
	Location string `json:"location,omitempty"`
}

// Structured groups findings by severity.
type Structured struct {
	Errors   []Entry `json:"errors"`
	Warnings []Entry `json:"warnings"`
}

// Structured returns the machine-queryable view of the report.
func (r *Report) Structured() Structured {
	out := Structured{
		Errors:   []Entry{},
		Warnings: []Entry{},
	}
	for _, f := range r.findings {
		entry := Entry{Message: f.Message, Code: string(f.Code), Location: f.Location}
		if f.Severity == SeverityError {
			out.Errors = append(out.Errors, entry)
		} else {
			out.Warnings = append(out.Warnings, entry)
		}
	}
	return out
}

// JSON encodes the structured view.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.Structured(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}
