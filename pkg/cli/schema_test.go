package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/schema"
)

func TestSchemaPreset(t *testing.T) {
	got := runCommand(t, schemaCmd(), "--preset", "standard-base")
	assert.Contains(t, got, "core: [major, minor, patch]")

	got = runCommand(t, schemaCmd(), "--preset", "calver-base-context")
	assert.Contains(t, got, "ts:YYYY")
	assert.Contains(t, got, "build: [branch, distance, commit_hash_short]")
}

func TestSchemaUnknownPreset(t *testing.T) {
	err := runCommandErr(t, schemaCmd(), "--preset", "standad")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "did you mean standard?")
}

func TestSchemaInlineNormalizes(t *testing.T) {
	got := runCommand(t, schemaCmd(), "--schema", `
core: [major, minor, patch]
extra_core: [pre_release]
build: ["str:build", 42]
`)
	assert.Contains(t, got, "extra_core: [pre_release]")
	assert.Contains(t, got, "str:build")
	assert.Contains(t, got, ", 42]")
}

func TestSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("core: [major, minor, patch]\n"), 0o600))

	got := runCommand(t, schemaCmd(), "--schema-file", path)
	assert.Contains(t, got, "core: [major, minor, patch]")
}

func TestSchemaStdin(t *testing.T) {
	withStdin(t, "core: [major, minor]\n")
	got := runCommand(t, schemaCmd())
	assert.Contains(t, got, "core: [major, minor]")
}

func TestSchemaInvalidPlacement(t *testing.T) {
	// Context variables are confined to the build section.
	err := runCommandErr(t, schemaCmd(), "--schema", "core: [branch]")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSchemaInvalid, errors.CodeOf(err))
}

func TestSchemaUnknownVariable(t *testing.T) {
	err := runCommandErr(t, schemaCmd(), "--schema", "core: [majr, minor, patch]")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeParse, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "majr")
}

func TestSchemaNoInput(t *testing.T) {
	withStdin(t, "")
	err := runCommandErr(t, schemaCmd())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "no schema input")
}

func TestPresetsList(t *testing.T) {
	got := runCommand(t, presetsCmd())
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, len(schema.PresetNames()))
	assert.Contains(t, lines, "standard")
	assert.Contains(t, lines, "calver-base-prerelease-post-dev-context")
}

func TestInspect(t *testing.T) {
	got := runCommand(t, inspectCmd(), "2!1.2.3a1")
	assert.Contains(t, got, "semver: 1.2.3-epoch.2.alpha.1")
	assert.Contains(t, got, "pep440: 2!1.2.3a1")
	assert.Contains(t, got, "notation:")
	assert.Contains(t, got, "core: [major, minor, patch]")
}

func TestInspectStdin(t *testing.T) {
	withStdin(t, "1.2.3-rc.1\n")
	got := runCommand(t, inspectCmd())
	assert.Contains(t, got, "semver: 1.2.3-rc.1")
	assert.Contains(t, got, "pep440: 1.2.3rc1")
}

func TestInspectInvalidInput(t *testing.T) {
	err := runCommandErr(t, inspectCmd(), "not-a-version")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeParse, errors.CodeOf(err))
}

func TestRootCommandWiring(t *testing.T) {
	root := rootCmd()
	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"version", "schema", "presets", "inspect"}, names)
}
