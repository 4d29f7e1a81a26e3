// Copyright (c) 2025, Verskit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Target selects the output shape of a Sanitizer.
type Target int

const (
	// TargetString produces a clean identifier string (alphanumeric runs
	// joined by the separator).
	TargetString Target = iota
	// TargetUint extracts the digits of the input as an unsigned integer
	// string; fully non-numeric input yields "0".
	TargetUint
)

// Sanitizer is a named, composable string transform enforcing a target
// format's character, case, and zero-padding rules. The zero value is not
// useful; construct through one of the preset constructors or New.
type Sanitizer struct {
	// Target selects string or unsigned-integer output.
	Target Target
	// Separator replaces runs of non-alphanumeric characters. Empty means
	// leave the input characters unchanged (string target only).
	Separator string
	// Lowercase folds the result to lower case (string target only).
	Lowercase bool
	// KeepZeros preserves leading zeros in numeric segments.
	KeepZeros bool
	// MaxLength truncates the result when positive.
	MaxLength int
}

// Default returns the general-purpose string sanitizer: dot separator, case
// preserved, leading zeros stripped.
func Default() Sanitizer {
	return Sanitizer{Target: TargetString, Separator: "."}
}

// PEP440 returns the sanitizer matching PEP 440 local-segment rules:
// lowercase, dot separator, leading zeros stripped.
func PEP440() Sanitizer {
	return Sanitizer{Target: TargetString, Separator: ".", Lowercase: true}
}

// SemVer returns the sanitizer matching SemVer identifier rules: case
// preserved, dot separator, leading zeros stripped.
func SemVer() Sanitizer {
	return Sanitizer{Target: TargetString, Separator: "."}
}

// Uint returns the digit-extraction sanitizer. keepZeros preserves leading
// zeros in the extracted digit string.
func Uint(keepZeros bool) Sanitizer {
	return Sanitizer{Target: TargetUint, KeepZeros: keepZeros}
}

// Key returns the sanitizer for custom-map key segments: lowercase, dot
// separator.
func Key() Sanitizer {
	return Sanitizer{Target: TargetString, Separator: ".", Lowercase: true}
}

// New returns a custom string sanitizer.
func New(separator string, lowercase, keepZeros bool, maxLength int) Sanitizer {
	return Sanitizer{
		Target:    TargetString,
		Separator: separator,
		Lowercase: lowercase,
		KeepZeros: keepZeros,
		MaxLength: maxLength,
	}
}

// Apply sanitizes input according to the configured rules. Empty or fully
// invalid input yields "" for the string target and "0" for the uint target.
func (s Sanitizer) Apply(input string) string {
	input = norm.NFKC.String(input)
	if s.Target == TargetUint {
		return s.applyUint(input)
	}
	return s.applyString(input)
}

func (s Sanitizer) applyString(input string) string {
	result := input
	if s.Lowercase {
		result = strings.ToLower(result)
	}

	result = s.replaceNonAlphanumeric(result)

	if !s.KeepZeros {
		result = s.stripLeadingZeros(result)
	}

	if s.MaxLength > 0 {
		runes := []rune(result)
		if len(runes) > s.MaxLength {
			result = string(runes[:s.MaxLength])
		}
	}

	if s.Separator != "" {
		result = strings.Trim(result, s.Separator)
	}

	return result
}

func (s Sanitizer) applyUint(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "0"
	}
	if s.KeepZeros {
		return digits.String()
	}
	trimmed := strings.TrimLeft(digits.String(), "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// replaceNonAlphanumeric collapses each run of non-alphanumeric characters
// into a single separator and drops a trailing one.
func (s Sanitizer) replaceNonAlphanumeric(input string) string {
	if s.Separator == "" {
		return input
	}

	var b strings.Builder
	lastWasSep := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastWasSep = false
		} else if !lastWasSep {
			b.WriteString(s.Separator)
			lastWasSep = true
		}
	}
	return strings.TrimRight(b.String(), s.Separator)
}

func (s Sanitizer) stripLeadingZeros(input string) string {
	if s.Separator == "" {
		return stripSegmentZeros(input)
	}
	if input == "" {
		return input
	}
	segments := strings.Split(input, s.Separator)
	for i, segment := range segments {
		segments[i] = stripSegmentZeros(segment)
	}
	return strings.Join(segments, s.Separator)
}

func stripSegmentZeros(segment string) string {
	if segment == "" || !isAllDigits(segment) {
		return segment
	}
	trimmed := strings.TrimLeft(segment, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
