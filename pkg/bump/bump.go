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
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

// level is one entry of the precedence order, highest first. The pre-release
// label and number occupy distinct levels so that a label bump can reset the
// number without touching anything above it.
type level int

const (
	levelEpoch level = iota
	levelMajor
	levelMinor
	levelPatch
	levelPreLabel
	levelPreNumber
	levelPost
	levelDev
)

// precedence is the single ordered list every cascade consults.
var precedence = []level{
	levelEpoch, levelMajor, levelMinor, levelPatch,
	levelPreLabel, levelPreNumber, levelPost, levelDev,
}

// Apply runs one invocation against the Version Variable Set and schema:
// context control first, then overrides, then field bumps in precedence
// order, then schema-indexed bumps. Overrides beat same-field bumps; the
// suppressed bump contributes neither an increment nor a cascade.
func Apply(vs *vars.Set, sch *schema.Schema, ops Ops) error {
	if err := ops.validateConflicts(); err != nil {
		return err
	}

	if ops.ForceClean {
		vs.DropContext()
	}

	applyOverrides(vs, ops)

	for _, l := range precedence {
		if err := applyFieldBump(vs, ops, l); err != nil {
			return err
		}
	}

	return applySchemaBumps(vs, sch, ops)
}

func applyOverrides(vs *vars.Set, ops Ops) {
	if ops.Epoch != nil {
		vs.Epoch = vars.Uint(*ops.Epoch)
	}
	if ops.Major != nil {
		vs.Major = vars.Uint(*ops.Major)
	}
	if ops.Minor != nil {
		vs.Minor = vars.Uint(*ops.Minor)
	}
	if ops.Patch != nil {
		vs.Patch = vars.Uint(*ops.Patch)
	}
	if ops.PreLabel != nil {
		vs.SetPreLabel(*ops.PreLabel)
	}
	if ops.PreNumber != nil {
		vs.SetPreNumber(*ops.PreNumber)
	}
	if ops.Post != nil {
		vs.Post = vars.Uint(*ops.Post)
	}
	if ops.Dev != nil {
		vs.Dev = vars.Uint(*ops.Dev)
	}
	if ops.Distance != nil {
		vs.Distance = vars.Uint(*ops.Distance)
	}
	if ops.DirtyTrue {
		vs.Dirty = vars.Bool(true)
	}
	if ops.DirtyFalse {
		vs.Dirty = vars.Bool(false)
	}
	if ops.Clean {
		vs.Clean()
	}
}

// applyFieldBump applies the explicit bump at one precedence level, then
// cascades resets over every strictly lower level. Post and dev are purely
// additive: their bumps never cascade.
func applyFieldBump(vs *vars.Set, ops Ops, l level) error {
	switch l {
	case levelEpoch:
		if ops.BumpEpoch == nil || ops.Epoch != nil {
			return nil
		}
		if err := vs.BumpNumber(vars.FieldEpoch, *ops.BumpEpoch); err != nil {
			return err
		}
	case levelMajor:
		if ops.BumpMajor == nil || ops.Major != nil {
			return nil
		}
		if err := vs.BumpNumber(vars.FieldMajor, *ops.BumpMajor); err != nil {
			return err
		}
	case levelMinor:
		if ops.BumpMinor == nil || ops.Minor != nil {
			return nil
		}
		if err := vs.BumpNumber(vars.FieldMinor, *ops.BumpMinor); err != nil {
			return err
		}
	case levelPatch:
		if ops.BumpPatch == nil || ops.Patch != nil {
			return nil
		}
		if err := vs.BumpNumber(vars.FieldPatch, *ops.BumpPatch); err != nil {
			return err
		}
	case levelPreLabel:
		if ops.BumpPreLabel == nil || ops.PreLabel != nil {
			return nil
		}
		vs.Pre = &vars.PreRelease{Label: *ops.BumpPreLabel, Number: vars.Uint(0)}
	case levelPreNumber:
		if ops.BumpPreNumber == nil || ops.PreNumber != nil {
			return nil
		}
		if vs.Pre == nil {
			vs.Pre = &vars.PreRelease{Label: vars.LabelAlpha, Number: vars.Uint(*ops.BumpPreNumber)}
		} else {
			current := uint64(0)
			if vs.Pre.Number != nil {
				current = *vs.Pre.Number
			}
			vs.Pre.Number = vars.Uint(current + *ops.BumpPreNumber)
		}
	case levelPost:
		if ops.BumpPost == nil || ops.Post != nil {
			return nil
		}
		if err := vs.BumpNumber(vars.FieldPost, *ops.BumpPost); err != nil {
			return err
		}
		return nil // additive, no cascade
	case levelDev:
		if ops.BumpDev == nil || ops.Dev != nil {
			return nil
		}
		if err := vs.BumpNumber(vars.FieldDev, *ops.BumpDev); err != nil {
			return err
		}
		return nil // additive, no cascade
	}

	resetBelow(vs, l)
	return nil
}

// resetBelow zeroes or clears every level strictly below l: numbers reset to
// zero, the pre-release label clears the whole pre-release, its number
// resets to zero when one survives, and post/dev go absent.
func resetBelow(vs *vars.Set, l level) {
	for _, lower := range precedence {
		if lower <= l {
			continue
		}
		switch lower {
		case levelMajor:
			vs.Major = vars.Uint(0)
		case levelMinor:
			vs.Minor = vars.Uint(0)
		case levelPatch:
			vs.Patch = vars.Uint(0)
		case levelPreLabel:
			vs.Pre = nil
		case levelPreNumber:
			if vs.Pre != nil {
				vs.Pre.Number = vars.Uint(0)
			}
		case levelPost:
			vs.Post = nil
		case levelDev:
			vs.Dev = nil
		}
	}
}
