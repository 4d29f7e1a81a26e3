package semver

import (
	"testing"
)

// FuzzParse checks that the parser never panics and that every accepted
// version survives a render/re-parse round trip.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"1.2.3",
		"v1.2.3",
		"0.0.0",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-rc.1+build.5",
		"1.0.0+20130313144700",
		"1.0.0-x.7.z.92",
		"18446744073709551615.0.0",
		"",
		"1",
		"1.2",
		"1.2.3.4",
		"1.2.3-",
		"1.2.3+",
		"01.2.3",
		"1.2.3-01",
		"1.2.3-alpha..1",
		"   1.2.3",
		"1.2.3-épsilon",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		v, err := Parse(input)
		if err != nil {
			return
		}

		s := v.String()
		v2, err := Parse(s)
		if err != nil {
			t.Fatalf("re-parsing %q (from %q) failed: %v", s, input, err)
		}
		if s != v2.String() {
			t.Fatalf("round trip mismatch for %q: %q != %q", input, s, v2.String())
		}
	})
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{
		"1.2.3",
		"1.0.0-alpha.1",
		"2.0.0-rc.1+build.5",
		"1.0.0-epoch.2.alpha.1.post.3.dev.4",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(inputs[i%len(inputs)])
	}
}

func BenchmarkVersionString(b *testing.B) {
	v, _ := Parse("1.0.0-epoch.2.alpha.1.post.3+build.5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}
