package structural

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/scan-io-git/isaval/internal/formats"
	"github.com/scan-io-git/isaval/internal/report"
	isaerrors "github.com/scan-io-git/isaval/pkg/errors"
)

const minimal = `{"identifier": "i1", "studies": [{"@id": "#study/1", "protocols": []}]}`

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New("")
	require.NoError(t, err)
	return v
}

func TestValidateMinimal(t *testing.T) {
	v := newValidator(t)

	result, err := v.Validate("minimal.json", []byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, formats.UTF8, result.Encoding)
	assert.Empty(t, result.Findings)
	require.Len(t, result.Document.Studies, 1)
	assert.Equal(t, "#study/1", result.Document.Studies[0].ID)
}

func TestValidateParseErrors(t *testing.T) {
	v := newValidator(t)

	for name, input := range map[string]string{
		"truncated": `{"identifier": `,
		"trailing":  `{} {}`,
		"garbage":   `not json`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := v.Validate("in.json", []byte(input))
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, isaerrors.ErrParse))

			var parseErr *isaerrors.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "in.json", parseErr.Source)
		})
	}
}

func TestValidateSchemaErrors(t *testing.T) {
	v := newValidator(t)

	tests := map[string]string{
		"studies not array":  `{"studies": "none"}`,
		"unknown root field": `{"investigation": {}}`,
		"ref without id":     `{"studies": [{"processSequence": [{"executesProtocol": {}}]}]}`,
		"root not object":    `[]`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := v.Validate("", []byte(input))
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, isaerrors.ErrSchema))
			assert.False(t, errors.Is(err, isaerrors.ErrParse))

			var schemaErr *isaerrors.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.NotEmpty(t, schemaErr.Violations)
		})
	}
}

func TestValidateUTF16(t *testing.T) {
	v := newValidator(t)

	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(minimal))
	require.NoError(t, err)

	result, err := v.Validate("non_utf8.json", encoded)
	require.NoError(t, err)
	assert.Equal(t, formats.UTF16LE, result.Encoding)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "File should be UTF-8 encoding", result.Findings[0].Message)
	assert.Equal(t, report.SeverityWarning, result.Findings[0].Severity)
	assert.Equal(t, "i1", result.Document.Identifier)
}

func TestValidateUTF8BOM(t *testing.T) {
	v := newValidator(t)

	result, err := v.Validate("", append([]byte{0xEF, 0xBB, 0xBF}, minimal...))
	require.NoError(t, err)
	assert.Empty(t, result.Findings)
}

func TestCustomSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["identifier"]
	}`), 0o644))

	v, err := New(path)
	require.NoError(t, err)

	_, err = v.Validate("", []byte(`{"title": "t"}`))
	assert.True(t, errors.Is(err, isaerrors.ErrSchema))

	_, err = v.Validate("", []byte(`{"identifier": "i"}`))
	assert.NoError(t, err)
}

func TestNewMissingSchema(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
