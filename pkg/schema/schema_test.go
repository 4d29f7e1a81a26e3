package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verskit/verskit/pkg/errors"
)

func TestNewValidSchemas(t *testing.T) {
	tests := []struct {
		name      string
		core      []Component
		extraCore []Component
		build     []Component
	}{
		{
			name: "standard",
			core: []Component{Ref(Major), Ref(Minor), Ref(Patch)},
		},
		{
			name:      "with secondaries",
			core:      []Component{Ref(Major), Ref(Minor), Ref(Patch)},
			extraCore: []Component{Ref(Epoch), Ref(PreRelease), Ref(Post), Ref(Dev)},
		},
		{
			name:  "context anywhere",
			core:  []Component{Ref(Major), Str("sep"), Ref(Minor)},
			build: []Component{Ref(Branch), Ref(Distance), Ref(CommitHashShort), Integer(42)},
		},
		{
			name: "calver patch only core",
			core: []Component{TimestampRef("YYYY"), TimestampRef("MM"), Ref(Patch)},
		},
		{
			name: "chain suffix without major",
			core: []Component{Ref(Minor), Ref(Patch)},
		},
		{
			name:  "custom references",
			core:  []Component{Ref(Major)},
			build: []Component{Ref(Custom("metadata.author"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.core, tt.extraCore, tt.build)
			require.NoError(t, err)
			assert.Equal(t, tt.core, s.Core())
			assert.Equal(t, tt.extraCore, append([]Component(nil), s.ExtraCore()...))
		})
	}
}

func TestNewInvalidSchemas(t *testing.T) {
	tests := []struct {
		name      string
		core      []Component
		extraCore []Component
		build     []Component
	}{
		{
			name: "empty schema",
		},
		{
			name: "primary out of order",
			core: []Component{Ref(Minor), Ref(Major)},
		},
		{
			name: "patch before major",
			core: []Component{Ref(Patch), Ref(Major)},
		},
		{
			name: "duplicate primary",
			core: []Component{Ref(Major), Ref(Major)},
		},
		{
			name: "minor skipped",
			core: []Component{Ref(Major), Ref(Patch)},
		},
		{
			name: "minor skipped around literal",
			core: []Component{Ref(Major), Integer(7), Ref(Patch)},
		},
		{
			name: "secondary in core",
			core: []Component{Ref(Major), Ref(Epoch)},
		},
		{
			name:      "primary in extra_core",
			core:      []Component{Ref(Major)},
			extraCore: []Component{Ref(Minor)},
		},
		{
			name:      "duplicate secondary",
			core:      []Component{Ref(Major)},
			extraCore: []Component{Ref(Post), Ref(Post)},
		},
		{
			name:  "primary in build",
			core:  []Component{Ref(Major)},
			build: []Component{Ref(Patch)},
		},
		{
			name:  "secondary in build",
			core:  []Component{Ref(Major)},
			build: []Component{Ref(Dev)},
		},
		{
			name: "bad timestamp pattern",
			core: []Component{TimestampRef("Y"), Ref(Patch)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.core, tt.extraCore, tt.build)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeSchemaInvalid, errors.CodeOf(err))
		})
	}
}

func TestNewCoreGapMessage(t *testing.T) {
	_, err := New([]Component{Ref(Major), Ref(Patch)}, nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSchemaInvalid, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "leaves a gap after major")
	assert.Contains(t, err.Error(), "minor must appear between them")
}

func TestSettersRevalidate(t *testing.T) {
	s := MustNew([]Component{Ref(Major), Ref(Minor), Ref(Patch)}, nil, nil)

	// A rejected mutation leaves the schema untouched.
	err := s.SetCore([]Component{Ref(Minor), Ref(Major)})
	require.Error(t, err)
	assert.Equal(t, []Component{Ref(Major), Ref(Minor), Ref(Patch)}, s.Core())

	require.NoError(t, s.SetExtraCore([]Component{Ref(Epoch), Ref(PreRelease)}))
	assert.Len(t, s.ExtraCore(), 2)

	err = s.SetBuild([]Component{Ref(Epoch)})
	require.Error(t, err)
	assert.Empty(t, s.Build())
}

func TestComponentAt(t *testing.T) {
	s := MustNew([]Component{Ref(Major), Ref(Minor), Ref(Patch)}, nil, nil)

	c, idx, err := s.ComponentAt(SectionCore, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, Ref(Major), c)

	c, idx, err = s.ComponentAt(SectionCore, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, Ref(Patch), c)

	c, idx, err = s.ComponentAt(SectionCore, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, Ref(Major), c)
}

func TestComponentAtOutOfRange(t *testing.T) {
	s := MustNew([]Component{Ref(Major), Ref(Minor), Ref(Patch)}, nil, nil)

	_, _, err := s.ComponentAt(SectionCore, 5)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBumpTarget, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "core")
	assert.Contains(t, err.Error(), "[major, minor, patch]")
	assert.Contains(t, err.Error(), "0..2")
	assert.Contains(t, err.Error(), "-3..-1")
	assert.Contains(t, err.Error(), "nearest valid index is 2")

	_, _, err = s.ComponentAt(SectionCore, -4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nearest valid index is -3")
}

func TestComponentAtEmptySection(t *testing.T) {
	s := MustNew([]Component{Ref(Major)}, nil, nil)

	_, _, err := s.ComponentAt(SectionBuild, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section build is empty")
}

func TestUnknownSection(t *testing.T) {
	s := MustNew([]Component{Ref(Major)}, nil, nil)

	_, _, err := s.ComponentAt("corr", 0)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBumpTarget, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "did you mean core?")
}

func TestReplaceComponentAt(t *testing.T) {
	s := MustNew([]Component{Ref(Major), Integer(7), Ref(Patch)}, nil, nil)

	require.NoError(t, s.ReplaceComponentAt(SectionCore, 1, Integer(8)))
	c, _, err := s.ComponentAt(SectionCore, 1)
	require.NoError(t, err)
	assert.Equal(t, Integer(8), c)

	// Negative index edit.
	require.NoError(t, s.ReplaceComponentAt(SectionCore, -2, Integer(9)))
	c, _, _ = s.ComponentAt(SectionCore, 1)
	assert.Equal(t, Integer(9), c)

	// An edit that would invalidate the schema is rejected and rolled back.
	err = s.ReplaceComponentAt(SectionCore, 0, Ref(Epoch))
	require.Error(t, err)
	c, _, _ = s.ComponentAt(SectionCore, 0)
	assert.Equal(t, Ref(Major), c)
}

func TestCloneAndEqual(t *testing.T) {
	s := MustNew(
		[]Component{Ref(Major), Ref(Minor)},
		[]Component{Ref(PreRelease)},
		[]Component{Str("build")},
	)

	c := s.Clone()
	assert.True(t, s.Equal(c))

	require.NoError(t, c.ReplaceComponentAt(SectionBuild, 0, Str("other")))
	assert.False(t, s.Equal(c))
}

func TestComponentString(t *testing.T) {
	tests := []struct {
		component Component
		expected  string
	}{
		{Ref(Major), "major"},
		{Ref(Custom("metadata.author")), "custom:metadata.author"},
		{Str("build"), "str:build"},
		{Integer(42), "42"},
		{TimestampRef("YYYY"), "ts:YYYY"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.component.String())
	}
}

func TestParseVar(t *testing.T) {
	v, err := ParseVar("major")
	require.NoError(t, err)
	assert.Equal(t, Major, v)

	v, err = ParseVar("custom:metadata.author")
	require.NoError(t, err)
	path, ok := v.CustomPath()
	require.True(t, ok)
	assert.Equal(t, "metadata.author", path)

	_, err = ParseVar("majro")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean major?")

	_, err = ParseVar("custom:")
	require.Error(t, err)
}

func TestVarCategories(t *testing.T) {
	assert.True(t, Major.IsPrimary())
	assert.True(t, Patch.IsPrimary())
	assert.True(t, Epoch.IsSecondary())
	assert.True(t, PreRelease.IsSecondary())
	assert.True(t, Branch.IsContext())
	assert.True(t, Custom("a.b").IsContext())
	assert.False(t, Major.IsContext())
}
