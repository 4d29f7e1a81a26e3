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
	"strconv"
	"strings"

	"github.com/verskit/verskit/pkg/vars"
)

// Segment is one dot-separated local-version element, numeric or textual.
type Segment struct {
	str     string
	num     uint64
	numeric bool
}

// NumericSegment wraps an unsigned integer local segment.
func NumericSegment(n uint64) Segment {
	return Segment{num: n, numeric: true}
}

// StringSegment wraps a textual local segment.
func StringSegment(s string) Segment {
	return Segment{str: s}
}

// Num returns the numeric value when the segment is numeric.
func (s Segment) Num() (uint64, bool) {
	return s.num, s.numeric
}

// Str returns the textual value when the segment is textual.
func (s Segment) Str() (string, bool) {
	return s.str, !s.numeric
}

func (s Segment) String() string {
	if s.numeric {
		return strconv.FormatUint(s.num, 10)
	}
	return s.str
}

// Version is a parsed PEP 440 version. HasPost and HasDev record a bare
// ".post" or ".dev" marker whose number was omitted.
type Version struct {
	Epoch      uint64
	Release    []uint64
	PreLabel   *vars.Label
	PreNumber  *uint64
	HasPost    bool
	PostNumber *uint64
	HasDev     bool
	DevNumber  *uint64
	Local      []Segment
}

// labelSpelling is the normalized PEP 440 spelling of a pre-release label.
func labelSpelling(l vars.Label) string {
	switch l {
	case vars.LabelAlpha:
		return "a"
	case vars.LabelBeta:
		return "b"
	default:
		return "rc"
	}
}

// String renders the version in PEP 440 normalized form:
// [N!]N(.N)*[{a|b|rc}N][.postN][.devN][+local].
func (v *Version) String() string {
	var b strings.Builder

	if v.Epoch > 0 {
		b.WriteString(strconv.FormatUint(v.Epoch, 10))
		b.WriteByte('!')
	}

	release := v.Release
	if len(release) == 0 {
		release = []uint64{0}
	}
	for i, n := range release {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(n, 10))
	}

	if v.PreLabel != nil {
		b.WriteString(labelSpelling(*v.PreLabel))
		if v.PreNumber != nil {
			b.WriteString(strconv.FormatUint(*v.PreNumber, 10))
		}
	}
	if v.HasPost {
		b.WriteString(".post")
		if v.PostNumber != nil {
			b.WriteString(strconv.FormatUint(*v.PostNumber, 10))
		}
	}
	if v.HasDev {
		b.WriteString(".dev")
		if v.DevNumber != nil {
			b.WriteString(strconv.FormatUint(*v.DevNumber, 10))
		}
	}

	if len(v.Local) > 0 {
		b.WriteByte('+')
		for i, seg := range v.Local {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(seg.String())
		}
	}

	return b.String()
}
