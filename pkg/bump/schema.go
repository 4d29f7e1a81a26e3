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

package bump

import (
	"fmt"
	"sort"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

// schemaTarget is one resolved schema bump: the normalized index plus the
// component found there at resolution time.
type schemaTarget struct {
	section schema.Section
	norm    int
	comp    schema.Component
	amount  uint64
}

// applySchemaBumps resolves every schema-indexed bump up front, rejects
// duplicate targets, then applies them in ascending section and index order.
// Resolution before application means a bad index fails the whole invocation
// instead of leaving a half-applied set.
func applySchemaBumps(vs *vars.Set, sch *schema.Schema, ops Ops) error {
	if len(ops.SchemaBumps) == 0 {
		return nil
	}

	seen := make(map[schema.Section]map[int]bool)
	targets := make([]schemaTarget, 0, len(ops.SchemaBumps))
	for _, sb := range ops.SchemaBumps {
		comp, norm, err := sch.ComponentAt(sb.Section, sb.Index)
		if err != nil {
			return err
		}
		if seen[sb.Section] == nil {
			seen[sb.Section] = make(map[int]bool)
		}
		if seen[sb.Section][norm] {
			return errors.NewWithContext(errors.ErrCodeConflict,
				fmt.Sprintf("duplicate bump target %s[%d]", sb.Section, norm),
				map[string]any{"section": string(sb.Section), "index": norm})
		}
		seen[sb.Section][norm] = true
		targets = append(targets, schemaTarget{
			section: sb.Section,
			norm:    norm,
			comp:    comp,
			amount:  sb.Amount,
		})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].section != targets[j].section {
			return sectionRank(targets[i].section) < sectionRank(targets[j].section)
		}
		return targets[i].norm < targets[j].norm
	})

	for _, t := range targets {
		if err := applySchemaBump(vs, sch, t); err != nil {
			return err
		}
	}
	return nil
}

func sectionRank(sec schema.Section) int {
	for i, s := range schema.Sections() {
		if s == sec {
			return i
		}
	}
	return len(schema.Sections())
}

// applySchemaBump dispatches on the component kind: variable references
// delegate to the field engine, integer literals increment in place, and
// everything else is not a bumpable target.
func applySchemaBump(vs *vars.Set, sch *schema.Schema, t schemaTarget) error {
	switch t.comp.Kind() {
	case schema.KindInteger:
		n, _ := t.comp.IntValue()
		return sch.ReplaceComponentAt(t.section, t.norm, schema.Integer(n+t.amount))
	case schema.KindVar:
		v, _ := t.comp.Var()
		return bumpVarField(vs, v, t.section, t.norm, t.amount)
	default:
		return notBumpable(t)
	}
}

// bumpVarField bumps the variable behind a schema component, cascading resets
// exactly as the equivalent field bump would. Context variables and custom
// references have no bump semantics.
func bumpVarField(vs *vars.Set, v schema.Var, sec schema.Section, norm int, amount uint64) error {
	f, ok := v.Field()
	if !ok {
		return notBumpable(schemaTarget{section: sec, norm: norm, comp: schema.Ref(v)})
	}

	switch f {
	case vars.FieldEpoch:
		if err := vs.BumpNumber(f, amount); err != nil {
			return err
		}
		resetBelow(vs, levelEpoch)
	case vars.FieldMajor:
		if err := vs.BumpNumber(f, amount); err != nil {
			return err
		}
		resetBelow(vs, levelMajor)
	case vars.FieldMinor:
		if err := vs.BumpNumber(f, amount); err != nil {
			return err
		}
		resetBelow(vs, levelMinor)
	case vars.FieldPatch:
		if err := vs.BumpNumber(f, amount); err != nil {
			return err
		}
		resetBelow(vs, levelPatch)
	case vars.FieldPreRelease:
		if vs.Pre == nil {
			vs.Pre = &vars.PreRelease{Label: vars.LabelAlpha, Number: vars.Uint(amount)}
		} else {
			current := uint64(0)
			if vs.Pre.Number != nil {
				current = *vs.Pre.Number
			}
			vs.Pre.Number = vars.Uint(current + amount)
		}
		resetBelow(vs, levelPreNumber)
	case vars.FieldPost:
		return vs.BumpNumber(f, amount)
	case vars.FieldDev:
		return vs.BumpNumber(f, amount)
	default:
		return notBumpable(schemaTarget{section: sec, norm: norm, comp: schema.Ref(v)})
	}
	return nil
}

func notBumpable(t schemaTarget) error {
	return errors.NewWithContext(errors.ErrCodeBumpTarget,
		fmt.Sprintf("component %s at %s[%d] cannot be bumped", t.comp.String(), t.section, t.norm),
		map[string]any{
			"section":   string(t.section),
			"index":     t.norm,
			"component": t.comp.String(),
		})
}
