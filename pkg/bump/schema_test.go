package bump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

func calverSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(
		[]schema.Component{
			schema.TimestampRef("YYYY"),
			schema.TimestampRef("MM"),
			schema.Ref(schema.Patch),
		},
		nil,
		[]schema.Component{schema.Str("build"), schema.Integer(7)},
	)
	require.NoError(t, err)
	return s
}

func TestSchemaBumpVarComponent(t *testing.T) {
	vs := releaseSet()
	sch := standardSchema(t)

	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionCore, Index: 1, Amount: 1},
	}})
	require.NoError(t, err)

	// Bumping through the schema cascades exactly like the field bump.
	assert.Equal(t, uint64(1), *vs.Major)
	assert.Equal(t, uint64(3), *vs.Minor)
	assert.Equal(t, uint64(0), *vs.Patch)
}

func TestSchemaBumpNegativeIndex(t *testing.T) {
	vs := releaseSet()
	sch := standardSchema(t)

	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionCore, Index: -1, Amount: 2},
	}})
	require.NoError(t, err)

	assert.Equal(t, uint64(5), *vs.Patch)
}

func TestSchemaBumpIntegerComponent(t *testing.T) {
	vs := releaseSet()
	sch := calverSchema(t)

	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionBuild, Index: 1, Amount: 3},
	}})
	require.NoError(t, err)

	comp, _, err := sch.ComponentAt(schema.SectionBuild, 1)
	require.NoError(t, err)
	n, ok := comp.IntValue()
	require.True(t, ok)
	assert.Equal(t, uint64(10), n)
}

func TestSchemaBumpRejectsStringComponent(t *testing.T) {
	vs := releaseSet()
	sch := calverSchema(t)

	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionBuild, Index: 0, Amount: 1},
	}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBumpTarget, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "cannot be bumped")
}

func TestSchemaBumpRejectsTimestampComponent(t *testing.T) {
	vs := releaseSet()
	sch := calverSchema(t)

	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionCore, Index: 0, Amount: 1},
	}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBumpTarget, errors.CodeOf(err))
}

func TestSchemaBumpRejectsContextVariable(t *testing.T) {
	vs := releaseSet()
	sch, err := schema.New(
		[]schema.Component{schema.Ref(schema.Major)},
		nil,
		[]schema.Component{schema.Ref(schema.Branch)},
	)
	require.NoError(t, err)

	err = Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionBuild, Index: 0, Amount: 1},
	}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBumpTarget, errors.CodeOf(err))
}

func TestSchemaBumpOutOfRange(t *testing.T) {
	vs := releaseSet()
	sch := standardSchema(t)

	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionCore, Index: 5, Amount: 1},
	}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBumpTarget, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "[major, minor, patch]")
	assert.Contains(t, err.Error(), "nearest valid index is 2")

	// The failed resolution never touches the set.
	assert.Equal(t, uint64(2), *vs.Minor)
}

func TestSchemaBumpDuplicateTarget(t *testing.T) {
	vs := releaseSet()
	sch := standardSchema(t)

	// Index 2 and index -1 normalize to the same component.
	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionCore, Index: 2, Amount: 1},
		{Section: schema.SectionCore, Index: -1, Amount: 1},
	}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConflict, errors.CodeOf(err))
	assert.Equal(t, uint64(3), *vs.Patch)
}

func TestSchemaBumpsApplyAscending(t *testing.T) {
	vs := releaseSet()
	sch := standardSchema(t)

	// Listed low-to-high on purpose; the engine reorders so the minor bump
	// runs before the patch bump and the patch bump lands after the reset.
	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionCore, Index: 2, Amount: 4},
		{Section: schema.SectionCore, Index: 1, Amount: 1},
	}})
	require.NoError(t, err)

	assert.Equal(t, uint64(3), *vs.Minor)
	assert.Equal(t, uint64(4), *vs.Patch)
}

func TestSchemaBumpPreReleaseComponent(t *testing.T) {
	vs := releaseSet()
	sch := standardSchema(t)

	err := Apply(vs, sch, Ops{SchemaBumps: []SchemaBump{
		{Section: schema.SectionExtraCore, Index: 0, Amount: 1},
	}})
	require.NoError(t, err)

	require.NotNil(t, vs.Pre)
	assert.Equal(t, vars.LabelAlpha, vs.Pre.Label)
	assert.Equal(t, uint64(1), *vs.Pre.Number)
}

func TestSchemaBumpCombinesWithFieldBumps(t *testing.T) {
	vs := releaseSet()
	sch := standardSchema(t)

	err := Apply(vs, sch, Ops{
		BumpMajor: uintPtr(1),
		SchemaBumps: []SchemaBump{
			{Section: schema.SectionCore, Index: 1, Amount: 2},
		},
	})
	require.NoError(t, err)

	// Field bumps run first; the schema bump then lands on the reset minor.
	assert.Equal(t, uint64(2), *vs.Major)
	assert.Equal(t, uint64(2), *vs.Minor)
	assert.Equal(t, uint64(0), *vs.Patch)
}
