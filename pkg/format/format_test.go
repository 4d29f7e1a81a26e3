package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/vars"
)

func TestParseFormat(t *testing.T) {
	for _, name := range Names() {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("semvr")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "did you mean semver?")
}

func TestParseExplicitFormats(t *testing.T) {
	v, err := Parse("1.2.3-rc.1", SemVer)
	require.NoError(t, err)
	assert.Equal(t, vars.LabelRC, v.Vars.Pre.Label)

	v, err = Parse("2!1.2.3rc1", PEP440)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), *v.Vars.Epoch)
	assert.Equal(t, vars.LabelRC, v.Vars.Pre.Label)
}

func TestParseAutoPrefersSemVer(t *testing.T) {
	// Valid in both grammars; semver wins.
	v, err := Parse("1.2.3", Auto)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), *v.Vars.Patch)

	// PEP 440 only.
	v, err = Parse("1!2.0.0.post1", Auto)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), *v.Vars.Epoch)
	assert.Equal(t, uint64(1), *v.Vars.Post)
}

func TestParseAutoReportsBothFailures(t *testing.T) {
	_, err := Parse("not-a-version", Auto)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeParse, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "neither semver nor PEP 440")
}

func TestRender(t *testing.T) {
	v, err := Parse("1!1.2.3a1.post2+local.4", PEP440)
	require.NoError(t, err)

	pep, err := Render(v, PEP440)
	require.NoError(t, err)
	assert.Equal(t, "1!1.2.3a1.post2+local.4", pep)

	sv, err := Render(v, SemVer)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-epoch.1.alpha.1.post.2+local.4", sv)
}

func TestRenderAutoRejected(t *testing.T) {
	v, err := Parse("1.0.0", SemVer)
	require.NoError(t, err)

	_, err = Render(v, Auto)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestCrossFormatConversion(t *testing.T) {
	// SemVer with structured pre-release fields renders natively in PEP 440.
	v, err := Parse("1.2.3-alpha.1.post.2.dev.3", SemVer)
	require.NoError(t, err)

	pep, err := Render(v, PEP440)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3a1.post2.dev3", pep)
}
