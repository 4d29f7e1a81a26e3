package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSanitizer(t *testing.T) {
	s := Default()

	assert.Equal(t, "feature.test.branch", s.Apply("feature/test-branch"))
	assert.Equal(t, "Build.ID.51", s.Apply("Build-ID-0051"))
	assert.Equal(t, "test.branch", s.Apply("test@#$%branch"))
}

func TestPEP440Sanitizer(t *testing.T) {
	s := PEP440()

	assert.Equal(t, "feature.api.v2", s.Apply("Feature/API-v2"))
	assert.Equal(t, "build.id.51", s.Apply("Build-ID-0051"))
	assert.Equal(t, "test.branch", s.Apply("TEST_BRANCH"))
}

func TestSemVerSanitizer(t *testing.T) {
	s := SemVer()

	assert.Equal(t, "Feature.API.v2", s.Apply("Feature/API-v2"))
	assert.Equal(t, "build.id.51", s.Apply("build-id-0051"))
}

func TestUintSanitizer(t *testing.T) {
	s := Uint(false)

	assert.Equal(t, "123456", s.Apply("abc123def456"))
	assert.Equal(t, "51", s.Apply("0051"))
	assert.Equal(t, "0", s.Apply("no-digits"))

	keep := Uint(true)
	assert.Equal(t, "0051", keep.Apply("0051"))
}

func TestUintEdgeCases(t *testing.T) {
	s := Uint(false)

	assert.Equal(t, "0", s.Apply(""))
	assert.Equal(t, "0", s.Apply("abc"))
	assert.Equal(t, "0", s.Apply("0000"))
	assert.Equal(t, "123", s.Apply("00123"))

	keep := Uint(true)
	assert.Equal(t, "0000", keep.Apply("0000"))
	assert.Equal(t, "00123", keep.Apply("00123"))
}

func TestCustomConfig(t *testing.T) {
	s := New("_", true, true, 10)

	assert.Equal(t, "feature_te", s.Apply("Feature/Test-0051"))
	assert.Equal(t, "build_id_0", s.Apply("Build-ID-0051"))
}

func TestLeadingZeros(t *testing.T) {
	strip := Default()
	keep := Default()
	keep.KeepZeros = true

	assert.Equal(t, "test.51", strip.Apply("test-0051"))
	assert.Equal(t, "test.0051", keep.Apply("test-0051"))
	assert.Equal(t, "test.0", strip.Apply("test-0000"))
}

func TestMaxLength(t *testing.T) {
	s := Default()
	s.MaxLength = 10

	assert.Equal(t, "very.long", s.Apply("very-long-branch-name"))
}

func TestEdgeCases(t *testing.T) {
	s := Default()

	assert.Equal(t, "", s.Apply(""))
	assert.Equal(t, "123", s.Apply("123"))
	assert.Equal(t, "", s.Apply("@#$%"))
	assert.Equal(t, "a.b", s.Apply("a@#$%b"))
}

func TestNoSeparator(t *testing.T) {
	s := Default()
	s.Separator = ""

	assert.Equal(t, "feature/test-branch", s.Apply("feature/test-branch"))
	assert.Equal(t, "Build-ID-0051", s.Apply("Build-ID-0051"))
}

func TestKeySanitizer(t *testing.T) {
	s := Key()

	assert.Equal(t, "custom.field", s.Apply("custom_field"))
	assert.Equal(t, "feature.api.v2", s.Apply("feature/API-v2"))
	assert.Equal(t, "build.id.51", s.Apply("Build-ID-0051"))
	assert.Equal(t, "test.branch", s.Apply("test@#$%branch"))
	assert.Equal(t, "", s.Apply(""))
}

func TestSeparatorTrimming(t *testing.T) {
	for _, keepZeros := range []bool{false, true} {
		s := Default()
		s.KeepZeros = keepZeros

		assert.Equal(t, "abc.test.branch.def", s.Apply("abc-test-branch-def"))
		assert.Equal(t, "test", s.Apply("---test---"))
		assert.Equal(t, "test", s.Apply("@#$test@#$"))

		short := s
		short.MaxLength = 10
		assert.Equal(t, "very.long", short.Apply("very-long-branch"))
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"Feature/API-v2",
		"Build-ID-0051",
		"---test---",
		"",
		"alpha.1",
		"00123",
	}
	sanitizers := map[string]Sanitizer{
		"pep440": PEP440(),
		"semver": SemVer(),
		"key":    Key(),
		"uint":   Uint(false),
	}

	for name, s := range sanitizers {
		for _, input := range inputs {
			once := s.Apply(input)
			assert.Equal(t, once, s.Apply(once), "%s not idempotent on %q", name, input)
		}
	}
}

func BenchmarkSanitizerApply(b *testing.B) {
	s := PEP440()
	for b.Loop() {
		s.Apply("Feature/API-v2-Build-ID-0051")
	}
}

func FuzzSanitizerIdempotence(f *testing.F) {
	f.Add("Feature/API-v2")
	f.Add("0051")
	f.Add("@#$%")
	f.Fuzz(func(t *testing.T, input string) {
		for _, s := range []Sanitizer{PEP440(), SemVer(), Uint(false), Uint(true)} {
			once := s.Apply(input)
			if twice := s.Apply(once); twice != once {
				t.Errorf("not idempotent: %q -> %q -> %q", input, once, twice)
			}
		}
	})
}
