// Package fields runs the scalar format checks over a decoded investigation.
// Each check is independent; empty values are never reported.
package fields

import (
	"fmt"

	"github.com/scan-io-git/isaval/internal/formats"
	"github.com/scan-io-git/isaval/internal/isajson"
	"github.com/scan-io-git/isaval/internal/report"
)

// FileExists reports whether a data file with the given name is present.
type FileExists func(name string) bool

// value is a scalar together with its document location.
type value struct {
	raw      string
	location string
}

func field(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func item(base, name string, i int) string {
	return fmt.Sprintf("%s[%d]", field(base, name), i)
}

// All runs every check in a fixed order: dates, DOIs, PubMed IDs, then data files.
// A nil fileExists skips the data file check.
func All(doc *isajson.Investigation, fileExists FileExists) []report.Finding {
	var findings []report.Finding
	findings = append(findings, CheckDates(doc)...)
	findings = append(findings, CheckDOIs(doc)...)
	findings = append(findings, CheckPubMedIDs(doc)...)
	if fileExists != nil {
		findings = append(findings, CheckDataFiles(doc, fileExists)...)
	}
	return findings
}

// CheckDates warns about submission, public release and process dates that are not ISO 8601.
func CheckDates(doc *isajson.Investigation) []report.Finding {
	var findings []report.Finding
	for _, v := range dates(doc) {
		if v.raw == "" || formats.IsISO8601(v.raw) {
			continue
		}
		findings = append(findings, report.DateFormat(v.location, v.raw))
	}
	return findings
}

// CheckDOIs warns about publication DOIs of the investigation and its studies.
func CheckDOIs(doc *isajson.Investigation) []report.Finding {
	var findings []report.Finding
	for _, v := range publicationValues(doc, "doi", func(p isajson.Publication) string { return p.DOI }) {
		if v.raw == "" || formats.IsDOI(v.raw) {
			continue
		}
		findings = append(findings, report.DOIFormat(v.location, v.raw))
	}
	return findings
}

// CheckPubMedIDs warns about publication PubMed IDs that are not 8 digits.
func CheckPubMedIDs(doc *isajson.Investigation) []report.Finding {
	var findings []report.Finding
	for _, v := range publicationValues(doc, "pubMedID", func(p isajson.Publication) string { return p.PubMedID }) {
		if v.raw == "" || formats.IsPubMedID(v.raw) {
			continue
		}
		findings = append(findings, report.PubMedIDFormat(v.location, v.raw))
	}
	return findings
}

// CheckDataFiles warns about every assay data file whose name fileExists does not find.
func CheckDataFiles(doc *isajson.Investigation, fileExists FileExists) []report.Finding {
	if doc == nil || fileExists == nil {
		return nil
	}
	var findings []report.Finding
	for i, study := range doc.Studies {
		for j, assay := range study.Assays {
			path := item(item("", "studies", i), "assays", j)
			for k, df := range assay.DataFiles {
				if df.Name == "" || fileExists(df.Name) {
					continue
				}
				findings = append(findings, report.CannotOpenFile(field(item(path, "dataFiles", k), "name"), df.Name))
			}
		}
	}
	return findings
}

func dates(doc *isajson.Investigation) []value {
	if doc == nil {
		return nil
	}
	values := []value{
		{doc.SubmissionDate, "submissionDate"},
		{doc.PublicReleaseDate, "publicReleaseDate"},
	}
	for i, study := range doc.Studies {
		path := item("", "studies", i)
		values = append(values,
			value{study.SubmissionDate, field(path, "submissionDate")},
			value{study.PublicReleaseDate, field(path, "publicReleaseDate")},
		)
		values = append(values, processDates(study.ProcessSequence, path)...)
		for j, assay := range study.Assays {
			values = append(values, processDates(assay.ProcessSequence, item(path, "assays", j))...)
		}
	}
	return values
}

func processDates(processes []isajson.Process, path string) []value {
	values := make([]value, 0, len(processes))
	for i, p := range processes {
		values = append(values, value{p.Date, field(item(path, "processSequence", i), "date")})
	}
	return values
}

func publicationValues(doc *isajson.Investigation, name string, get func(isajson.Publication) string) []value {
	if doc == nil {
		return nil
	}
	var values []value
	collect := func(pubs []isajson.Publication, path string) {
		for i, p := range pubs {
			values = append(values, value{get(p), field(item(path, "publications", i), name)})
		}
	}
	collect(doc.Publications, "")
	for i, study := range doc.Studies {
		collect(study.Publications, item("", "studies", i))
	}
	return values
}
