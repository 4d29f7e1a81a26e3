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

package timestamp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verskit/verskit/pkg/errors"
)

// Named pattern tokens. Tokens are two characters and may be concatenated
// (e.g. "YYYY0M0D"); the zero-prefixed variants pad to two digits.
const (
	PatternYYYY = "YYYY" // full year
	PatternYY   = "YY"   // two-digit year, unpadded
	PatternMM   = "MM"   // month, unpadded
	Pattern0M   = "0M"   // month, zero-padded
	PatternDD   = "DD"   // day, unpadded
	Pattern0D   = "0D"   // day, zero-padded
	PatternHH   = "HH"   // hour, unpadded
	Pattern0H   = "0H"   // hour, zero-padded
	PatternMin  = "mm"   // minute, unpadded
	Pattern0Min = "0m"   // minute, zero-padded
	PatternSS   = "SS"   // second, unpadded
	Pattern0S   = "0S"   // second, zero-padded
	PatternWW   = "WW"   // ISO week, unpadded
	Pattern0W   = "0W"   // ISO week, zero-padded

	// PatternCompactDate is an alias for %Y%m%d.
	PatternCompactDate = "compact_date"
	// PatternCompactDateTime is an alias for %Y%m%d%H%M%S.
	PatternCompactDateTime = "compact_datetime"
)

// Validate reports whether pattern is a known token sequence, a named alias,
// or a %-style custom format.
func Validate(pattern string) error {
	_, err := compile(pattern)
	return err
}

// Format renders the given unix timestamp (UTC) according to pattern.
func Format(pattern string, unix uint64) (string, error) {
	steps, err := compile(pattern)
	if err != nil {
		return "", err
	}
	t := time.Unix(int64(unix), 0).UTC()
	var b strings.Builder
	for _, step := range steps {
		b.WriteString(step(t))
	}
	return b.String(), nil
}

type step func(time.Time) string

func compile(pattern string) ([]step, error) {
	switch pattern {
	case PatternCompactDate:
		return compileStrftime("%Y%m%d")
	case PatternCompactDateTime:
		return compileStrftime("%Y%m%d%H%M%S")
	}
	if strings.Contains(pattern, "%") {
		return compileStrftime(pattern)
	}
	return compileTokens(pattern)
}

// compileTokens consumes the pattern greedily: YYYY first, then two-character
// tokens. Anything left over, including single characters, is invalid.
func compileTokens(pattern string) ([]step, error) {
	if pattern == "" {
		return nil, errors.New(errors.ErrCodeSchemaInvalid, "empty timestamp pattern")
	}
	var steps []step
	rest := pattern
	for rest != "" {
		if strings.HasPrefix(rest, PatternYYYY) {
			steps = append(steps, func(t time.Time) string { return strconv.Itoa(t.Year()) })
			rest = rest[len(PatternYYYY):]
			continue
		}
		if len(rest) < 2 {
			return nil, invalidPattern(pattern)
		}
		token, ok := tokenSteps[rest[:2]]
		if !ok {
			return nil, invalidPattern(pattern)
		}
		steps = append(steps, token)
		rest = rest[2:]
	}
	return steps, nil
}

var tokenSteps = map[string]step{
	PatternYY:   func(t time.Time) string { return strconv.Itoa(t.Year() % 100) },
	PatternMM:   func(t time.Time) string { return strconv.Itoa(int(t.Month())) },
	Pattern0M:   func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) },
	PatternDD:   func(t time.Time) string { return strconv.Itoa(t.Day()) },
	Pattern0D:   func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) },
	PatternHH:   func(t time.Time) string { return strconv.Itoa(t.Hour()) },
	Pattern0H:   func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) },
	PatternMin:  func(t time.Time) string { return strconv.Itoa(t.Minute()) },
	Pattern0Min: func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) },
	PatternSS:   func(t time.Time) string { return strconv.Itoa(t.Second()) },
	Pattern0S:   func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) },
	PatternWW:   func(t time.Time) string { w := isoWeek(t); return strconv.Itoa(w) },
	Pattern0W:   func(t time.Time) string { w := isoWeek(t); return fmt.Sprintf("%02d", w) },
}

func isoWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// compileStrftime supports the strftime directives the named tokens map onto.
func compileStrftime(pattern string) ([]step, error) {
	var steps []step
	rest := pattern
	for rest != "" {
		idx := strings.IndexByte(rest, '%')
		if idx < 0 {
			literal := rest
			steps = append(steps, func(time.Time) string { return literal })
			break
		}
		if idx > 0 {
			literal := rest[:idx]
			steps = append(steps, func(time.Time) string { return literal })
		}
		if idx+1 >= len(rest) {
			return nil, invalidPattern(pattern)
		}
		directive, ok := strftimeSteps[rest[idx+1]]
		if !ok {
			return nil, invalidPattern(pattern)
		}
		steps = append(steps, directive)
		rest = rest[idx+2:]
	}
	return steps, nil
}

var strftimeSteps = map[byte]step{
	'Y': func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) },
	'y': func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) },
	'm': func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) },
	'd': func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) },
	'H': func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) },
	'M': func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) },
	'S': func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) },
	'W': func(t time.Time) string { w := isoWeek(t); return fmt.Sprintf("%02d", w) },
	'%': func(time.Time) string { return "%" },
}

func invalidPattern(pattern string) error {
	return errors.NewWithContext(
		errors.ErrCodeSchemaInvalid,
		fmt.Sprintf("invalid timestamp pattern %q", pattern),
		map[string]any{"pattern": pattern},
	)
}
