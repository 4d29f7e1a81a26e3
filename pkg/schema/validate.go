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
	"github.com/verskit/verskit/pkg/timestamp"
)

// validate enforces the placement rules:
//   - the schema holds at least one component;
//   - core: primaries only among primaries/secondaries, each at most once,
//     in ascending major -> minor -> patch order with no gaps;
//   - extra_core: secondaries only, each at most once;
//   - build: context components only;
//   - timestamp patterns must compile, wherever they appear.
func validate(core, extraCore, build []Component) error {
	if len(core)+len(extraCore)+len(build) == 0 {
		return errors.New(errors.ErrCodeSchemaInvalid, "schema must contain at least one component")
	}

	if err := validateCore(core); err != nil {
		return err
	}
	if err := validateExtraCore(extraCore); err != nil {
		return err
	}
	if err := validateBuild(build); err != nil {
		return err
	}

	for _, sec := range []struct {
		name  Section
		comps []Component
	}{
		{SectionCore, core}, {SectionExtraCore, extraCore}, {SectionBuild, build},
	} {
		for _, c := range sec.comps {
			pattern, ok := c.Pattern()
			if !ok {
				continue
			}
			if err := timestamp.Validate(pattern); err != nil {
				return errors.WrapWithContext(
					errors.ErrCodeSchemaInvalid,
					fmt.Sprintf("section %s %s holds an invalid timestamp pattern",
						sec.name, formatComponents(sec.comps)),
					err,
					sectionContext(sec.name, sec.comps),
				)
			}
		}
	}

	return nil
}

func validateCore(core []Component) error {
	lastRank := -1
	seen := map[Var]bool{}
	for _, c := range core {
		v, ok := c.Var()
		if !ok {
			continue
		}
		if v.IsSecondary() {
			return placementError(SectionCore, core, fmt.Sprintf(
				"secondary variable %s may only appear in extra_core", v.Name()))
		}
		if !v.IsPrimary() {
			continue
		}
		if seen[v] {
			return placementError(SectionCore, core, fmt.Sprintf(
				"primary variable %s appears more than once", v.Name()))
		}
		seen[v] = true
		rank := v.primaryRank()
		if rank < lastRank {
			return placementError(SectionCore, core, fmt.Sprintf(
				"primary variable %s is out of order, expected major before minor before patch", v.Name()))
		}
		// A trailing suffix of the chain may start anywhere (calver cores use
		// patch alone), but once a primary is present the next one must follow
		// directly: skipping an intermediate leaves a gap.
		if lastRank >= 0 && rank > lastRank+1 {
			return placementError(SectionCore, core, fmt.Sprintf(
				"primary variable %s leaves a gap after %s, %s must appear between them",
				v.Name(), primaryName(lastRank), primaryName(lastRank+1)))
		}
		lastRank = rank
	}
	return nil
}

func primaryName(rank int) string {
	switch rank {
	case 0:
		return Major.Name()
	case 1:
		return Minor.Name()
	default:
		return Patch.Name()
	}
}

func validateExtraCore(extraCore []Component) error {
	seen := map[Var]bool{}
	for _, c := range extraCore {
		v, ok := c.Var()
		if !ok {
			continue
		}
		if v.IsPrimary() {
			return placementError(SectionExtraCore, extraCore, fmt.Sprintf(
				"primary variable %s may only appear in core", v.Name()))
		}
		if !v.IsSecondary() {
			continue
		}
		if seen[v] {
			return placementError(SectionExtraCore, extraCore, fmt.Sprintf(
				"secondary variable %s appears more than once", v.Name()))
		}
		seen[v] = true
	}
	return nil
}

func validateBuild(build []Component) error {
	for _, c := range build {
		v, ok := c.Var()
		if !ok {
			continue
		}
		if v.IsPrimary() {
			return placementError(SectionBuild, build, fmt.Sprintf(
				"primary variable %s may only appear in core", v.Name()))
		}
		if v.IsSecondary() {
			return placementError(SectionBuild, build, fmt.Sprintf(
				"secondary variable %s may only appear in extra_core", v.Name()))
		}
	}
	return nil
}

func placementError(sec Section, comps []Component, reason string) error {
	return errors.NewWithContext(
		errors.ErrCodeSchemaInvalid,
		fmt.Sprintf("invalid section %s %s: %s", sec, formatComponents(comps), reason),
		sectionContext(sec, comps),
	)
}

func sectionContext(sec Section, comps []Component) map[string]any {
	return map[string]any{
		"section": string(sec),
		"content": formatComponents(comps),
	}
}
