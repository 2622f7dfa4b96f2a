package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsISO8601(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"2008-08-15", true},
		{"2008-08", true},
		{"2008", true},
		{"20080815", true},
		{"2008-08-15T10:30", true},
		{"2008-08-15T10:30:00", true},
		{"2008-08-15T10:30:00Z", true},
		{"2008-08-15T10:30:00.123+02:00", true},
		{"2008-08-15T10:30:00+0200", true},
		{"20080815T103000Z", true},
		{"15/08/2008", false},
		{"2008-13-01", false},
		{"2008-02-30", false},
		{"08-15-2008", false},
		{" 2008-08-15", false},
		{"", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsISO8601(tt.value))
		})
	}
}

func TestIsDOI(t *testing.T) {
	assert.True(t, IsDOI("10.1371/journal.pone.0003042"))
	assert.True(t, IsDOI("10.1000/182"))
	assert.True(t, IsDOI("10.123456789/x"))
	assert.False(t, IsDOI("1371/journal.pone.0003042"))
	assert.False(t, IsDOI("10.137/journal"))
	assert.False(t, IsDOI("10.1371/"))
	assert.False(t, IsDOI("10.1371/journal pone"))
	assert.False(t, IsDOI("doi:10.1371/journal.pone.0003042"))
}

func TestIsPubMedID(t *testing.T) {
	assert.True(t, IsPubMedID("18725995"))
	assert.False(t, IsPubMedID("1872599"))
	assert.False(t, IsPubMedID("187259951"))
	assert.False(t, IsPubMedID("1872599a"))
	assert.False(t, IsPubMedID(""))
}

func TestIsUTF8(t *testing.T) {
	assert.True(t, IsUTF8([]byte(`{"title": "café"}`)))
	assert.True(t, IsUTF8(append([]byte{0xEF, 0xBB, 0xBF}, '{', '}')))
	assert.False(t, IsUTF8([]byte{0xFF, 0xFE, '{', 0, '}', 0}))
	assert.False(t, IsUTF8([]byte{'{', '"', 0xE9, '"', '}'}))
}
