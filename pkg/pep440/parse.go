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

package pep440

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/vars"
)

// versionPattern follows the PEP 440 grammar: optional epoch, dotted release,
// then optional pre, post, and dev segments with their separator variants,
// and an optional local version.
var versionPattern = regexp.MustCompile(
	`(?i)^v?` +
		`(?:(?P<epoch>[0-9]+)!)?` +
		`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
		`(?P<pre>[-_\.]?(?P<prel>alpha|a|beta|b|preview|pre|c|rc)[-_\.]?(?P<pren>[0-9]+)?)?` +
		`(?P<post>(?:-(?P<postn1>[0-9]+))|(?:[-_\.]?(?P<postl>post|rev|r)[-_\.]?(?P<postn2>[0-9]+)?))?` +
		`(?P<dev>[-_\.]?dev[-_\.]?(?P<devn>[0-9]+)?)?` +
		`(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?$`,
)

// Parse reads a PEP 440 version string. Spelling variants normalize on
// parse: label aliases collapse to alpha/beta/rc and "-N" becomes a post
// release.
func Parse(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	m := versionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, errors.NewWithContext(
			errors.ErrCodeParse,
			"invalid PEP 440 version "+strconv.Quote(s),
			map[string]any{"input": s},
		)
	}

	group := func(name string) string {
		return m[versionPattern.SubexpIndex(name)]
	}

	v := &Version{}
	if epoch := group("epoch"); epoch != "" {
		v.Epoch, _ = strconv.ParseUint(epoch, 10, 64)
	}
	for _, part := range strings.Split(group("release"), ".") {
		n, _ := strconv.ParseUint(part, 10, 64)
		v.Release = append(v.Release, n)
	}

	if label := group("prel"); label != "" {
		normalized, ok := vars.ParseLabel(label)
		if !ok {
			normalized = vars.LabelAlpha
		}
		v.PreLabel = &normalized
		if n := group("pren"); n != "" {
			num, _ := strconv.ParseUint(n, 10, 64)
			v.PreNumber = &num
		}
	}

	if group("post") != "" {
		v.HasPost = true
		n := group("postn1")
		if n == "" {
			n = group("postn2")
		}
		if n != "" {
			num, _ := strconv.ParseUint(n, 10, 64)
			v.PostNumber = &num
		}
	}

	if group("dev") != "" {
		v.HasDev = true
		if n := group("devn"); n != "" {
			num, _ := strconv.ParseUint(n, 10, 64)
			v.DevNumber = &num
		}
	}

	if local := group("local"); local != "" {
		v.Local = parseLocalSegments(local)
	}

	return v, nil
}

// parseLocalSegments splits a local version on dots; all-digit parts become
// numeric segments, which drops their leading zeros on render.
func parseLocalSegments(local string) []Segment {
	parts := strings.Split(strings.ToLower(local), ".")
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if isAllDigits(part) {
			n, err := strconv.ParseUint(part, 10, 64)
			if err == nil {
				segments = append(segments, NumericSegment(n))
				continue
			}
		}
		segments = append(segments, StringSegment(part))
	}
	return segments
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
