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

	"github.com/verskit/verskit/pkg/engine"
	"github.com/verskit/verskit/pkg/resolve"
	"github.com/verskit/verskit/pkg/sanitize"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

// FromVersion renders a schema-driven version as semver. The first three
// core components that resolve to integers become major, minor, and patch;
// every other core and extra-core value flattens into the pre-release vector
// and the build section into build metadata.
func FromVersion(v *engine.Version) *Version {
	sv := &Version{}
	uintSan := sanitize.Uint(false)
	semverSan := sanitize.SemVer()

	coreCount := 0
	for _, c := range v.Schema.Core() {
		if coreCount < 3 {
			if val, ok := resolve.Value(c, v.Vars, uintSan); ok && val != "" {
				if n, err := strconv.ParseUint(val, 10, 64); err == nil {
					switch coreCount {
					case 0:
						sv.Major = n
					case 1:
						sv.Minor = n
					case 2:
						sv.Patch = n
					}
					coreCount++
					continue
				}
			}
		}
		if val, ok := resolve.Value(c, v.Vars, semverSan); ok && val != "" {
			sv.PreRelease = appendFlattened(sv.PreRelease, val)
		}
	}

	for _, c := range v.Schema.ExtraCore() {
		if vr, ok := c.Var(); ok && vr.IsSecondary() {
			values, ok := resolve.ExpandedValues(vr, v.Vars, semverSan, sanitize.Key())
			if !ok {
				continue
			}
			for _, val := range values {
				if val != "" {
					sv.PreRelease = append(sv.PreRelease, classify(val))
				}
			}
			continue
		}
		if val, ok := resolve.Value(c, v.Vars, semverSan); ok && val != "" {
			sv.PreRelease = appendFlattened(sv.PreRelease, val)
		}
	}

	for _, c := range v.Schema.Build() {
		if val, ok := resolve.Value(c, v.Vars, semverSan); ok && val != "" {
			sv.Build = appendFlattened(sv.Build, val)
		}
	}

	return sv
}

// appendFlattened splits a resolved value on dots and appends each non-empty
// part as its own identifier.
func appendFlattened(ids []Identifier, value string) []Identifier {
	for _, part := range strings.Split(value, ".") {
		if part != "" {
			ids = append(ids, classify(part))
		}
	}
	return ids
}

func classify(part string) Identifier {
	if n, err := strconv.ParseUint(part, 10, 64); err == nil {
		return NumericID(n)
	}
	return StringID(part)
}

// preScanner accumulates the structured fields recognized while walking a
// pre-release identifier vector. Each of epoch, post, dev, and the
// pre-release label is consumed at most once; everything else stays a
// literal extra-core component.
type preScanner struct {
	pre       *vars.PreRelease
	extraCore []schema.Component
	epoch     *uint64
	post      *uint64
	dev       *uint64
}

func (p *preScanner) trySpecialPair(ids []Identifier, i int) bool {
	if i+1 >= len(ids) {
		return false
	}
	label, ok := ids[i].Str()
	if !ok {
		return false
	}
	num, ok := ids[i+1].Num()
	if !ok {
		return false
	}

	switch label {
	case "epoch":
		if p.epoch == nil {
			p.epoch = vars.Uint(num)
			p.extraCore = append(p.extraCore, schema.Ref(schema.Epoch))
			return true
		}
	case "post":
		if p.post == nil {
			p.post = vars.Uint(num)
			p.extraCore = append(p.extraCore, schema.Ref(schema.Post))
			return true
		}
	case "dev":
		if p.dev == nil {
			p.dev = vars.Uint(num)
			p.extraCore = append(p.extraCore, schema.Ref(schema.Dev))
			return true
		}
	}
	return p.tryPreRelease(label, vars.Uint(num))
}

func (p *preScanner) tryPreRelease(label string, number *uint64) bool {
	normalized, ok := vars.ParseLabel(label)
	if !ok || p.pre != nil {
		return false
	}
	p.pre = &vars.PreRelease{Label: normalized, Number: number}
	p.extraCore = append(p.extraCore, schema.Ref(schema.PreRelease))
	return true
}

func (p *preScanner) addLiteral(id Identifier) {
	if n, ok := id.Num(); ok {
		p.extraCore = append(p.extraCore, schema.Integer(n))
		return
	}
	s, _ := id.Str()
	p.extraCore = append(p.extraCore, schema.Str(s))
}

func (p *preScanner) scan(ids []Identifier) {
	i := 0
	for i < len(ids) {
		if p.trySpecialPair(ids, i) {
			i += 2
			continue
		}
		if label, ok := ids[i].Str(); ok {
			if !p.tryPreRelease(label, nil) {
				p.addLiteral(ids[i])
			}
		} else {
			p.addLiteral(ids[i])
		}
		i++
	}
}

// ToVersion lifts a parsed semver into the schema-driven model: the
// canonical major.minor.patch core, recognized pre-release fields promoted
// to their variables, leftovers as literal extra-core components, and build
// metadata as literal build components.
func ToVersion(sv *Version) (*engine.Version, error) {
	scanner := &preScanner{}
	scanner.scan(sv.PreRelease)

	build := make([]schema.Component, 0, len(sv.Build))
	for _, id := range sv.Build {
		if n, ok := id.Num(); ok {
			build = append(build, schema.Integer(n))
			continue
		}
		s, _ := id.Str()
		build = append(build, schema.Str(s))
	}

	sch, err := schema.New(
		[]schema.Component{schema.Ref(schema.Major), schema.Ref(schema.Minor), schema.Ref(schema.Patch)},
		scanner.extraCore,
		build,
	)
	if err != nil {
		return nil, err
	}

	return engine.New(sch, &vars.Set{
		Major: vars.Uint(sv.Major),
		Minor: vars.Uint(sv.Minor),
		Patch: vars.Uint(sv.Patch),
		Epoch: scanner.epoch,
		Pre:   scanner.pre,
		Post:  scanner.post,
		Dev:   scanner.dev,
	}), nil
}
