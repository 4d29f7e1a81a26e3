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

	"github.com/verskit/verskit/pkg/engine"
	"github.com/verskit/verskit/pkg/resolve"
	"github.com/verskit/verskit/pkg/sanitize"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

// FromVersion renders a schema-driven version as PEP 440. Core components
// that resolve to integers form the release segment; non-integer values and
// the build section flatten into the local version. Secondary variables in
// extra-core map onto their native PEP 440 fields.
func FromVersion(v *engine.Version) *Version {
	pv := &Version{}
	intSan := sanitize.Uint(false)
	localSan := sanitize.PEP440()

	for _, c := range v.Schema.Core() {
		if val, ok := resolve.Value(c, v.Vars, intSan); ok && val != "" {
			if n, err := strconv.ParseUint(val, 10, 64); err == nil {
				pv.Release = append(pv.Release, n)
				continue
			}
		}
		if val, ok := resolve.Value(c, v.Vars, localSan); ok && val != "" {
			pv.appendLocal(val)
		}
	}

	for _, c := range v.Schema.ExtraCore() {
		vr, isVar := c.Var()
		if !isVar || !vr.IsSecondary() {
			if val, ok := resolve.Value(c, v.Vars, localSan); ok && val != "" {
				pv.appendLocal(val)
			}
			continue
		}

		switch vr {
		case schema.Epoch:
			if n, ok := resolveUint(c, v.Vars, intSan); ok {
				pv.Epoch = n
			}
		case schema.PreRelease:
			pv.setPreRelease(v.Vars, localSan)
		case schema.Post:
			if n, ok := resolveUint(c, v.Vars, intSan); ok {
				pv.HasPost = true
				pv.PostNumber = vars.Uint(n)
			}
		case schema.Dev:
			if n, ok := resolveUint(c, v.Vars, intSan); ok {
				pv.HasDev = true
				pv.DevNumber = vars.Uint(n)
			}
		}
	}

	for _, c := range v.Schema.Build() {
		if val, ok := resolve.Value(c, v.Vars, localSan); ok && val != "" {
			pv.appendLocal(val)
		}
	}

	return pv
}

func resolveUint(c schema.Component, vs *vars.Set, san sanitize.Sanitizer) (uint64, bool) {
	val, ok := resolve.Value(c, vs, san)
	if !ok || val == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (v *Version) setPreRelease(vs *vars.Set, san sanitize.Sanitizer) {
	values, ok := resolve.ExpandedValues(schema.PreRelease, vs, san, sanitize.Key())
	if !ok || len(values) == 0 || values[0] == "" {
		return
	}
	if label, ok := vars.ParseLabel(values[0]); ok {
		v.PreLabel = &label
	}
	if len(values) >= 2 && values[1] != "" {
		if n, err := strconv.ParseUint(values[1], 10, 64); err == nil {
			v.PreNumber = vars.Uint(n)
		}
	}
}

// appendLocal splits a resolved value on dots and appends each non-empty
// part as a local segment.
func (v *Version) appendLocal(value string) {
	for _, part := range strings.Split(value, ".") {
		if part == "" {
			continue
		}
		if isAllDigits(part) {
			if n, err := strconv.ParseUint(part, 10, 64); err == nil {
				v.Local = append(v.Local, NumericSegment(n))
				continue
			}
		}
		v.Local = append(v.Local, StringSegment(part))
	}
}

// ToVersion lifts a parsed PEP 440 version into the schema-driven model: the
// first three release parts become major, minor, and patch, excess parts
// stay literal core components, and local segments become literal build
// components.
func ToVersion(pv *Version) (*engine.Version, error) {
	core := []schema.Component{
		schema.Ref(schema.Major), schema.Ref(schema.Minor), schema.Ref(schema.Patch),
	}
	for _, part := range releaseTail(pv.Release) {
		core = append(core, schema.Integer(part))
	}

	extraCore := []schema.Component{
		schema.Ref(schema.Epoch), schema.Ref(schema.PreRelease),
		schema.Ref(schema.Post), schema.Ref(schema.Dev),
	}

	build := make([]schema.Component, 0, len(pv.Local))
	for _, seg := range pv.Local {
		if n, ok := seg.Num(); ok {
			build = append(build, schema.Integer(n))
			continue
		}
		s, _ := seg.Str()
		build = append(build, schema.Str(s))
	}

	sch, err := schema.New(core, extraCore, build)
	if err != nil {
		return nil, err
	}

	vs := &vars.Set{}
	if len(pv.Release) > 0 {
		vs.Major = vars.Uint(pv.Release[0])
	}
	if len(pv.Release) > 1 {
		vs.Minor = vars.Uint(pv.Release[1])
	}
	if len(pv.Release) > 2 {
		vs.Patch = vars.Uint(pv.Release[2])
	}
	if pv.Epoch > 0 {
		vs.Epoch = vars.Uint(pv.Epoch)
	}
	if pv.PreLabel != nil {
		vs.Pre = &vars.PreRelease{Label: *pv.PreLabel, Number: pv.PreNumber}
	}
	vs.Post = pv.PostNumber
	vs.Dev = pv.DevNumber

	return engine.New(sch, vs), nil
}

func releaseTail(release []uint64) []uint64 {
	if len(release) <= 3 {
		return nil
	}
	return release[3:]
}
