package report

import "fmt"

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks a correctness failure in the document graph.
	SeverityError Severity = "error"
	// SeverityWarning marks a quality problem that does not break the graph.
	SeverityWarning Severity = "warning"
)

// IsValid returns true if the severity is known.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Code identifies the rule that produced a finding.
// Values follow the ISA validator rule numbering.
type Code string

const (
	CodeEncoding             Code = "0010"
	CodeSourceLink           Code = "1002"
	CodeSampleLink           Code = "1003"
	CodeDataFileLink         Code = "1004"
	CodeMaterialLink         Code = "1005"
	CodeProcessLink          Code = "1006"
	CodeProtocolRefLink      Code = "1007"
	CodeFactorLink           Code = "1008"
	CodeParameterLink        Code = "1009"
	CodeCharacteristicLink   Code = "1010"
	CodeUnitLink             Code = "1011"
	CodeTermSourceLink       Code = "1012"
	CodeDuplicateDeclaration Code = "1013"
	CodeDateFormat           Code = "3001"
	CodeDOIFormat            Code = "3002"
	CodePubMedIDFormat       Code = "3003"
	CodeDataFileMissing      Code = "3004"
	CodeProtocolUnused       Code = "3005"
	CodeFactorUnused         Code = "3006"
	CodeTermSourceUnused     Code = "3007"
)

// Finding is a single validation result. Findings are values and are never
// modified once recorded.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     Code     `json:"code"`
	Message  string   `json:"message"`
	Location string   `json:"location,omitempty"`
}

// NewError creates an error finding.
func NewError(code Code, location, format string, args ...interface{}) Finding {
	return Finding{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}

// NewWarning creates a warning finding.
func NewWarning(code Code, location, format string, args ...interface{}) Finding {
	return Finding{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}
