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

package schema

import (
	"fmt"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/suggest"
)

// Section names one of the three schema component sequences.
type Section string

const (
	SectionCore      Section = "core"
	SectionExtraCore Section = "extra_core"
	SectionBuild     Section = "build"
)

// Sections lists the schema sections in order.
func Sections() []Section {
	return []Section{SectionCore, SectionExtraCore, SectionBuild}
}

// Schema holds three ordered component sequences. Construction and mutation
// go through validating entry points only, so a held Schema is always valid.
type Schema struct {
	core      []Component
	extraCore []Component
	build     []Component
}

// New validates and constructs a schema from its three sections.
func New(core, extraCore, build []Component) (*Schema, error) {
	if err := validate(core, extraCore, build); err != nil {
		return nil, err
	}
	return &Schema{
		core:      cloneComponents(core),
		extraCore: cloneComponents(extraCore),
		build:     cloneComponents(build),
	}, nil
}

// MustNew is New for statically known-good schemas, such as preset tables.
func MustNew(core, extraCore, build []Component) *Schema {
	s, err := New(core, extraCore, build)
	if err != nil {
		panic(err)
	}
	return s
}

// Core returns a copy of the core section.
func (s *Schema) Core() []Component { return cloneComponents(s.core) }

// ExtraCore returns a copy of the extra_core section.
func (s *Schema) ExtraCore() []Component { return cloneComponents(s.extraCore) }

// Build returns a copy of the build section.
func (s *Schema) Build() []Component { return cloneComponents(s.build) }

// Clone returns a deep copy.
func (s *Schema) Clone() *Schema {
	return &Schema{
		core:      cloneComponents(s.core),
		extraCore: cloneComponents(s.extraCore),
		build:     cloneComponents(s.build),
	}
}

// Equal reports structural equality.
func (s *Schema) Equal(o *Schema) bool {
	if s == nil || o == nil {
		return s == o
	}
	return equalComponents(s.core, o.core) &&
		equalComponents(s.extraCore, o.extraCore) &&
		equalComponents(s.build, o.build)
}

// SetCore replaces the core section, re-validating the whole schema.
func (s *Schema) SetCore(comps []Component) error {
	if err := validate(comps, s.extraCore, s.build); err != nil {
		return err
	}
	s.core = cloneComponents(comps)
	return nil
}

// SetExtraCore replaces the extra_core section, re-validating the whole
// schema.
func (s *Schema) SetExtraCore(comps []Component) error {
	if err := validate(s.core, comps, s.build); err != nil {
		return err
	}
	s.extraCore = cloneComponents(comps)
	return nil
}

// SetBuild replaces the build section, re-validating the whole schema.
func (s *Schema) SetBuild(comps []Component) error {
	if err := validate(s.core, s.extraCore, comps); err != nil {
		return err
	}
	s.build = cloneComponents(comps)
	return nil
}

// Section returns a copy of the named section.
func (s *Schema) Section(sec Section) ([]Component, error) {
	comps, err := s.section(sec)
	if err != nil {
		return nil, err
	}
	return cloneComponents(*comps), nil
}

// ComponentAt resolves the component at index within a section. Negative
// indices count from the end. The normalized non-negative index is returned
// alongside the component.
func (s *Schema) ComponentAt(sec Section, index int) (Component, int, error) {
	comps, err := s.section(sec)
	if err != nil {
		return Component{}, 0, err
	}
	norm, err := normalizeIndex(sec, *comps, index)
	if err != nil {
		return Component{}, 0, err
	}
	return (*comps)[norm], norm, nil
}

// ReplaceComponentAt swaps the component at index within a section and
// re-validates. Negative indices count from the end.
func (s *Schema) ReplaceComponentAt(sec Section, index int, c Component) error {
	comps, err := s.section(sec)
	if err != nil {
		return err
	}
	norm, err := normalizeIndex(sec, *comps, index)
	if err != nil {
		return err
	}

	candidate := cloneComponents(*comps)
	candidate[norm] = c

	switch sec {
	case SectionCore:
		return s.SetCore(candidate)
	case SectionExtraCore:
		return s.SetExtraCore(candidate)
	default:
		return s.SetBuild(candidate)
	}
}

func (s *Schema) section(sec Section) (*[]Component, error) {
	switch sec {
	case SectionCore:
		return &s.core, nil
	case SectionExtraCore:
		return &s.extraCore, nil
	case SectionBuild:
		return &s.build, nil
	}

	ctx := map[string]any{"section": string(sec)}
	msg := fmt.Sprintf("unknown schema section %q", string(sec))
	names := []string{string(SectionCore), string(SectionExtraCore), string(SectionBuild)}
	if hint, ok := suggest.Closest(string(sec), names); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", hint)
		ctx["suggestion"] = hint
	}
	return nil, errors.NewWithContext(errors.ErrCodeBumpTarget, msg, ctx)
}

// normalizeIndex maps a possibly negative index into [0, len). Out-of-range
// indices produce an error naming the section, its full content, the valid
// range for both signs, and the nearest valid index.
func normalizeIndex(sec Section, comps []Component, index int) (int, error) {
	n := len(comps)
	if n == 0 {
		return 0, errors.NewWithContext(
			errors.ErrCodeBumpTarget,
			fmt.Sprintf("section %s is empty, no index is valid", sec),
			map[string]any{"section": string(sec), "index": index},
		)
	}

	norm := index
	if norm < 0 {
		norm += n
	}
	if norm >= 0 && norm < n {
		return norm, nil
	}

	nearest := n - 1
	if index < 0 {
		nearest = -n
	}
	return 0, errors.NewWithContext(
		errors.ErrCodeBumpTarget,
		fmt.Sprintf(
			"index %d out of range for section %s %s: valid indices are 0..%d (or -%d..-1), nearest valid index is %d",
			index, sec, formatComponents(comps), n-1, n, nearest,
		),
		map[string]any{
			"section": string(sec),
			"content": formatComponents(comps),
			"index":   index,
			"min":     -n,
			"max":     n - 1,
			"nearest": nearest,
		},
	)
}

func cloneComponents(comps []Component) []Component {
	if comps == nil {
		return nil
	}
	out := make([]Component, len(comps))
	copy(out, comps)
	return out
}

func equalComponents(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
