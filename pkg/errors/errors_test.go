package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := fmt.Errorf("validate: %w", NewParseError("invalid.json", cause))

	assert.True(t, stderrors.Is(err, ErrParse))
	assert.False(t, stderrors.Is(err, ErrSchema))
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "invalid.json")

	var parseErr *ParseError
	assert.True(t, stderrors.As(err, &parseErr))
	assert.Equal(t, "invalid.json", parseErr.Source)
}

func TestSchemaError(t *testing.T) {
	err := NewSchemaError(
		Violation{InstanceLocation: "/studies", KeywordLocation: "/properties/studies/type", Message: "expected array, but got string"},
		Violation{Message: "additionalProperties 'foo' not allowed"},
	)

	assert.True(t, stderrors.Is(err, ErrSchema))
	assert.False(t, stderrors.Is(err, ErrParse))
	assert.Equal(t,
		"document does not conform to the ISA-JSON schema: /studies: expected array, but got string; /: additionalProperties 'foo' not allowed",
		err.Error())
	assert.Equal(t, ErrSchema.Error(), NewSchemaError().Error())
}
