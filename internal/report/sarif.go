package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	ToolName = "isaval"
	ToolURI  = "https://isa-specs.readthedocs.io/en/latest/isajson.html"
)

var ruleDescriptions = map[Code]string{
	CodeEncoding:             "Input file should be UTF-8 encoded",
	CodeSourceLink:           "Source link must point to a declared source",
	CodeSampleLink:           "Sample link must point to a declared sample",
	CodeDataFileLink:         "Data file link must point to a declared data file",
	CodeMaterialLink:         "Material link must point to a declared material",
	CodeProcessLink:          "Process link must point to a declared process",
	CodeProtocolRefLink:      "executesProtocol must point to a declared protocol",
	CodeFactorLink:           "Factor value category must point to a declared factor",
	CodeParameterLink:        "Parameter value category must point to a declared protocol parameter",
	CodeCharacteristicLink:   "Characteristic category must be declared",
	CodeUnitLink:             "Unit must point to a declared unit category",
	CodeTermSourceLink:       "Ontology annotation term source must be declared",
	CodeDuplicateDeclaration: "Identifiers must be unique within the document",
	CodeDateFormat:           "Dates must conform to ISO 8601",
	CodeDOIFormat:            "DOIs must conform to the DOI syntax",
	CodePubMedIDFormat:       "PubMed IDs must be 8 digits",
	CodeDataFileMissing:      "Declared data files must exist",
	CodeProtocolUnused:       "Declared protocols should be used in their study",
	CodeFactorUnused:         "Declared factors should be used in their study",
	CodeTermSourceUnused:     "Declared term sources should be used in the investigation",
}

// SARIF converts the report into a SARIF 2.1.0 log with one result per finding.
func (r *Report) SARIF(source string) (*sarif.Report, error) {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(ToolName, ToolURI)
	for _, f := range r.findings {
		rule := run.AddRule(string(f.Code)).
			WithDescription(ruleDescriptions[f.Code])

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(source)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(toSarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{location})
		if f.Location != "" {
			result.PropertyBag = *sarif.NewPropertyBag()
			result.Add("location", f.Location)
		}
		run.AddResult(result)
	}
	sarifReport.AddRun(run)

	return sarifReport, nil
}

// WriteSARIF writes the SARIF form of the report.
func (r *Report) WriteSARIF(w io.Writer, source string) error {
	sarifReport, err := r.SARIF(source)
	if err != nil {
		return err
	}
	return sarifReport.PrettyWrite(w)
}

func toSarifLevel(severity Severity) string {
	switch severity {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "none"
	}
}
