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

package engine

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

// versionDoc is the debug-notation document: the schema in notation form and
// the variable set verbatim.
type versionDoc struct {
	Schema schemaDoc `yaml:"schema"`
	Vars   *vars.Set `yaml:"vars"`
}

type schemaDoc struct {
	Core      []schema.Component `yaml:"core"`
	ExtraCore []schema.Component `yaml:"extra_core,omitempty"`
	Build     []schema.Component `yaml:"build,omitempty"`
}

// Notation renders the version in debug-notation form, a YAML document with
// schema and vars sections. The result round-trips through Parse.
func (v *Version) Notation() (string, error) {
	doc := versionDoc{Vars: v.Vars}
	if v.Schema != nil {
		doc.Schema = schemaDoc{
			Core:      v.Schema.Core(),
			ExtraCore: v.Schema.ExtraCore(),
			Build:     v.Schema.Build(),
		}
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to render version notation", err)
	}
	return string(out), nil
}

// Parse reads a debug-notation document, validates its schema, and rejects
// documents whose core section references variables absent from vars.
func Parse(text string) (*Version, error) {
	var doc versionDoc
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		if se, ok := err.(*errors.StructuredError); ok {
			return nil, se
		}
		return nil, errors.Wrap(errors.ErrCodeParse, "invalid version notation", err)
	}

	sch, err := schema.New(doc.Schema.Core, doc.Schema.ExtraCore, doc.Schema.Build)
	if err != nil {
		return nil, err
	}

	v := New(sch, doc.Vars)
	if missing := missingCoreVars(v.Schema, v.Vars); len(missing) > 0 {
		return nil, errors.NewWithContext(
			errors.ErrCodeConversion,
			fmt.Sprintf("schema references missing core variables: %s", strings.Join(missing, ", ")),
			map[string]any{"missing": missing},
		)
	}
	return v, nil
}

// missingCoreVars lists the primary variables the core section references
// that are absent from the variable set. A referenced primary with no value
// would otherwise render as a silent zero.
func missingCoreVars(sch *schema.Schema, vs *vars.Set) []string {
	checks := []struct {
		v   schema.Var
		val *uint64
	}{
		{schema.Major, vs.Major},
		{schema.Minor, vs.Minor},
		{schema.Patch, vs.Patch},
	}

	var missing []string
	for _, ch := range checks {
		if ch.val != nil {
			continue
		}
		for _, c := range sch.Core() {
			if ref, ok := c.Var(); ok && ref == ch.v {
				missing = append(missing, ch.v.Name())
				break
			}
		}
	}
	return missing
}
