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
	"strconv"
	"strings"
)

// Identifier is one dot-separated pre-release or build-metadata element,
// either numeric or alphanumeric.
type Identifier struct {
	str     string
	num     uint64
	numeric bool
}

// NumericID wraps an unsigned integer identifier.
func NumericID(n uint64) Identifier {
	return Identifier{num: n, numeric: true}
}

// StringID wraps an alphanumeric identifier.
func StringID(s string) Identifier {
	return Identifier{str: s}
}

// Num returns the numeric value when the identifier is numeric.
func (id Identifier) Num() (uint64, bool) {
	return id.num, id.numeric
}

// Str returns the textual value when the identifier is alphanumeric.
func (id Identifier) Str() (string, bool) {
	return id.str, !id.numeric
}

func (id Identifier) String() string {
	if id.numeric {
		return strconv.FormatUint(id.num, 10)
	}
	return id.str
}

// Version is a parsed Semantic Versioning 2.0.0 version: three numeric core
// parts plus optional pre-release and build-metadata identifier vectors.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	PreRelease []Identifier
	Build      []Identifier
}

// String renders the version in canonical form without the "v" prefix.
func (v *Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if len(v.PreRelease) > 0 {
		b.WriteByte('-')
		b.WriteString(joinIdentifiers(v.PreRelease))
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(joinIdentifiers(v.Build))
	}
	return b.String()
}

func joinIdentifiers(ids []Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ".")
}
