package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verskit/verskit/pkg/errors"
)

func TestParseNotation(t *testing.T) {
	text := `
core: [major, minor, patch]
extra_core: [epoch, pre_release]
build: ["str:build", 42, "ts:compact_date", "custom:metadata.author"]
`
	s, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []Component{Ref(Major), Ref(Minor), Ref(Patch)}, s.Core())
	assert.Equal(t, []Component{Ref(Epoch), Ref(PreRelease)}, s.ExtraCore())
	assert.Equal(t, []Component{
		Str("build"),
		Integer(42),
		TimestampRef("compact_date"),
		Ref(Custom("metadata.author")),
	}, s.Build())
}

func TestParseNotationBlockStyle(t *testing.T) {
	text := `
core:
  - major
  - minor
extra_core: []
build: []
`
	s, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, []Component{Ref(Major), Ref(Minor)}, s.Core())
}

func TestParseNotationErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not yaml", "core: ["},
		{"unknown variable", "core: [majro]"},
		{"empty timestamp", `core: ["ts:"]`},
		{"nested element", "core: [[major]]"},
		{"invalid placement", "core: [epoch]"},
		{"empty document", "core: []\nextra_core: []\nbuild: []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
		})
	}
}

func TestParseNotationUnknownVarHasLocation(t *testing.T) {
	_, err := Parse("core: [major]\nbuild: [bogusvar]\n")
	require.Error(t, err)
	// yaml.v3 reports decode errors with line context.
	assert.Contains(t, err.Error(), "line 2")
}

func TestNotationRoundTrip(t *testing.T) {
	original := MustNew(
		[]Component{Ref(Major), Ref(Minor), Ref(Patch)},
		[]Component{Ref(Epoch), Ref(PreRelease)},
		[]Component{Str("build"), Integer(42), TimestampRef("YYYY"), Ref(Custom("metadata.author"))},
	)

	text, err := original.Notation()
	require.NoError(t, err)

	parsed, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed), "round trip changed schema:\n%s", text)
}

func TestNotationOutputShape(t *testing.T) {
	s := MustNew([]Component{Ref(Major), Ref(Minor)}, nil, nil)

	text, err := s.Notation()
	require.NoError(t, err)
	assert.Contains(t, text, "core: [major, minor]")
	assert.Contains(t, text, "extra_core: []")
	assert.Contains(t, text, "build: []")
}

func TestParseNotationErrorCode(t *testing.T) {
	_, err := Parse("core: [majro]")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeParse, errors.CodeOf(err))
}
