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

package semver

import (
	"regexp"
	"strconv"
	"strings"

	xsemver "golang.org/x/mod/semver"

	"github.com/verskit/verskit/pkg/errors"
)

// versionPattern demands the strict three-part form; the x/mod/semver check
// below would otherwise admit "1" and "1.2" shorthands.
var versionPattern = regexp.MustCompile(
	`^v?(?P<major>0|[1-9]\d*)` +
		`\.(?P<minor>0|[1-9]\d*)` +
		`\.(?P<patch>0|[1-9]\d*)` +
		`(?:-(?P<prerelease>(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+(?P<buildmetadata>[0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`,
)

// Parse reads a strict three-part semver string. A leading "v" is accepted
// and dropped.
func Parse(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	bare := strings.TrimPrefix(trimmed, "v")
	if !xsemver.IsValid("v" + bare) {
		return nil, invalidVersion(s)
	}

	m := versionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, invalidVersion(s)
	}

	v := &Version{}
	var err error
	if v.Major, err = strconv.ParseUint(m[versionPattern.SubexpIndex("major")], 10, 64); err != nil {
		return nil, invalidVersion(s)
	}
	if v.Minor, err = strconv.ParseUint(m[versionPattern.SubexpIndex("minor")], 10, 64); err != nil {
		return nil, invalidVersion(s)
	}
	if v.Patch, err = strconv.ParseUint(m[versionPattern.SubexpIndex("patch")], 10, 64); err != nil {
		return nil, invalidVersion(s)
	}

	if pre := m[versionPattern.SubexpIndex("prerelease")]; pre != "" {
		v.PreRelease = parseIdentifiers(pre)
	}
	if build := m[versionPattern.SubexpIndex("buildmetadata")]; build != "" {
		v.Build = parseIdentifiers(build)
	}
	return v, nil
}

// parseIdentifiers classifies each dot-separated part: all-digits without a
// leading zero is numeric, everything else textual.
func parseIdentifiers(input string) []Identifier {
	parts := strings.Split(input, ".")
	ids := make([]Identifier, 0, len(parts))
	for _, part := range parts {
		if isNumericIdentifier(part) {
			n, err := strconv.ParseUint(part, 10, 64)
			if err == nil {
				ids = append(ids, NumericID(n))
				continue
			}
		}
		ids = append(ids, StringID(part))
	}
	return ids
}

func isNumericIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s == "0" || s[0] != '0'
}

func invalidVersion(s string) error {
	return errors.NewWithContext(
		errors.ErrCodeParse,
		"invalid semver version "+strconv.Quote(s),
		map[string]any{"input": s},
	)
}
