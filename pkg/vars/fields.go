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

package vars

import (
	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/suggest"
)

// Field names a Set member for get/set/bump addressing.
type Field string

const (
	FieldMajor      Field = "major"
	FieldMinor      Field = "minor"
	FieldPatch      Field = "patch"
	FieldEpoch      Field = "epoch"
	FieldPreRelease Field = "pre_release"
	FieldPost       Field = "post"
	FieldDev        Field = "dev"
	FieldDistance   Field = "distance"
	FieldDirty      Field = "dirty"
)

// BumpableFields lists the numeric fields a relative bump may target, in
// precedence order (pre-release excluded; it bumps through its own label and
// number operations).
func BumpableFields() []Field {
	return []Field{FieldEpoch, FieldMajor, FieldMinor, FieldPatch, FieldPost, FieldDev}
}

func fieldNames() []string {
	return []string{
		string(FieldEpoch), string(FieldMajor), string(FieldMinor),
		string(FieldPatch), string(FieldPreRelease), string(FieldPost),
		string(FieldDev),
	}
}

// numberRef maps a numeric field name to its storage slot.
func (s *Set) numberRef(f Field) **uint64 {
	switch f {
	case FieldMajor:
		return &s.Major
	case FieldMinor:
		return &s.Minor
	case FieldPatch:
		return &s.Patch
	case FieldEpoch:
		return &s.Epoch
	case FieldPost:
		return &s.Post
	case FieldDev:
		return &s.Dev
	case FieldDistance:
		return &s.Distance
	default:
		return nil
	}
}

// Get returns the current value of a field and whether it is present.
func (s *Set) Get(f Field) (any, bool) {
	switch f {
	case FieldPreRelease:
		if s.Pre == nil {
			return nil, false
		}
		return *s.Pre, true
	case FieldDirty:
		if s.Dirty == nil {
			return nil, false
		}
		return *s.Dirty, true
	default:
		ref := s.numberRef(f)
		if ref == nil || *ref == nil {
			return nil, false
		}
		return **ref, true
	}
}

// SetNumber performs an absolute assignment of a numeric field with no side
// effects on any other field.
func (s *Set) SetNumber(f Field, v uint64) error {
	ref := s.numberRef(f)
	if ref == nil {
		return unknownField(f)
	}
	*ref = Uint(v)
	return nil
}

// BumpNumber increments a numeric field by n, treating an absent field as
// zero. Reset cascades are the bump engine's concern, not this method's.
func (s *Set) BumpNumber(f Field, n uint64) error {
	ref := s.numberRef(f)
	if ref == nil || f == FieldDistance {
		return unknownField(f)
	}
	current := uint64(0)
	if *ref != nil {
		current = **ref
	}
	*ref = Uint(current + n)
	return nil
}

// SetPreLabel assigns the pre-release label, preserving an existing number or
// defaulting it to zero when none existed.
func (s *Set) SetPreLabel(label Label) {
	if s.Pre != nil {
		s.Pre.Label = label
		if s.Pre.Number == nil {
			s.Pre.Number = Uint(0)
		}
		return
	}
	s.Pre = &PreRelease{Label: label, Number: Uint(0)}
}

// SetPreNumber assigns the pre-release number, defaulting the label to alpha
// when no pre-release existed.
func (s *Set) SetPreNumber(n uint64) {
	if s.Pre != nil {
		s.Pre.Number = Uint(n)
		return
	}
	s.Pre = &PreRelease{Label: LabelAlpha, Number: Uint(n)}
}

func unknownField(f Field) error {
	ctx := map[string]any{"field": string(f)}
	msg := "unknown bump field " + string(f)
	if hint, ok := suggest.Closest(string(f), fieldNames()); ok {
		msg += " (did you mean " + hint + "?)"
		ctx["suggestion"] = hint
	}
	return errors.NewWithContext(errors.ErrCodeBumpTarget, msg, ctx)
}
