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
	"time"

	"github.com/verskit/verskit/pkg/bump"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

// nowUnix is swapped out by tests that assert timestamp refresh behavior.
var nowUnix = func() uint64 { return uint64(time.Now().Unix()) }

// Version pairs a schema with the Version Variable Set it renders. It is the
// pivot every codec converts to and from.
type Version struct {
	Schema *schema.Schema
	Vars   *vars.Set
}

// New pairs a schema with a variable set. A nil set is replaced with an empty
// one so Apply and the resolvers always have something to work on.
func New(sch *schema.Schema, vs *vars.Set) *Version {
	if vs == nil {
		vs = &vars.Set{}
	}
	return &Version{Schema: sch, Vars: vs}
}

// Apply runs one bump invocation against the version, then refreshes the
// current-commit timestamp when the tree is dirty: uncommitted changes are
// newer than any commit, so a dirty build stamps now.
func (v *Version) Apply(ops bump.Ops) error {
	if err := bump.Apply(v.Vars, v.Schema, ops); err != nil {
		return err
	}
	if v.Vars.Dirty != nil && *v.Vars.Dirty {
		v.Vars.Timestamp = vars.Uint(nowUnix())
	}
	return nil
}

// Clone deep-copies the version so speculative applies leave the original
// untouched.
func (v *Version) Clone() *Version {
	clone := &Version{}
	if v.Schema != nil {
		clone.Schema = v.Schema.Clone()
	}
	if v.Vars != nil {
		vs := *v.Vars
		if v.Vars.Pre != nil {
			pre := *v.Vars.Pre
			vs.Pre = &pre
		}
		if v.Vars.Custom != nil {
			vs.Custom = cloneMap(v.Vars.Custom)
		}
		clone.Vars = &vs
	}
	return clone
}

func cloneMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			out[k] = cloneMap(sub)
			continue
		}
		out[k] = v
	}
	return out
}
