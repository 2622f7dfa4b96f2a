// Package formats holds pure checks of scalar values against ISA domain formats.
package formats

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	doiPattern      = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
	pubMedIDPattern = regexp.MustCompile(`^\d{8}$`)
)

// iso8601Layouts lists the accepted ISO 8601 calendar date and date-time forms,
// extended and basic.
var iso8601Layouts = [...]string{
	"2006-01-02",
	"2006-01",
	"2006",
	"20060102",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999-0700",
	"20060102T150405",
	"20060102T150405Z0700",
}

// ParseISO8601 parses a date or date-time in one of the ISO 8601 forms.
func ParseISO8601(value string) (time.Time, bool) {
	if value == "" || strings.TrimSpace(value) != value {
		return time.Time{}, false
	}
	for _, layout := range iso8601Layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// IsISO8601 reports whether value is an ISO 8601 date or date-time.
func IsISO8601(value string) bool {
	_, ok := ParseISO8601(value)
	return ok
}

// IsDOI reports whether value matches the DOI syntax 10.<registrant>/<suffix>.
func IsDOI(value string) bool {
	return doiPattern.MatchString(value)
}

// IsPubMedID reports whether value is an 8 digit PubMed identifier.
func IsPubMedID(value string) bool {
	return pubMedIDPattern.MatchString(value)
}

// IsUTF8 reports whether data is valid UTF-8 without a byte order mark of another encoding.
func IsUTF8(data []byte) bool {
	enc, _ := sniffBOM(data)
	if enc != UTF8 && enc != Unknown {
		return false
	}
	return utf8.Valid(data)
}
