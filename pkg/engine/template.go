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
	"strings"

	"github.com/verskit/verskit/pkg/schema"
)

// TemplateContext flattens the version into a map for output templating:
// every present variable under its notation name, short hashes included, plus
// the schema in notation form under "schema". Absent variables are omitted so
// templates can test presence directly.
func (v *Version) TemplateContext() (map[string]any, error) {
	ctx := make(map[string]any)
	vs := v.Vars

	putUint := func(key string, p *uint64) {
		if p != nil {
			ctx[key] = *p
		}
	}
	putString := func(key string, p *string) {
		if p != nil {
			ctx[key] = *p
		}
	}

	putUint(schema.Major.Name(), vs.Major)
	putUint(schema.Minor.Name(), vs.Minor)
	putUint(schema.Patch.Name(), vs.Patch)
	putUint(schema.Epoch.Name(), vs.Epoch)
	putUint(schema.Post.Name(), vs.Post)
	putUint(schema.Dev.Name(), vs.Dev)
	putUint(schema.Distance.Name(), vs.Distance)
	putUint(schema.Timestamp.Name(), vs.Timestamp)
	putUint(schema.LastTimestamp.Name(), vs.LastTimestamp)

	if vs.Dirty != nil {
		ctx[schema.Dirty.Name()] = *vs.Dirty
	}
	if vs.Pre != nil {
		pre := map[string]any{"label": string(vs.Pre.Label)}
		if vs.Pre.Number != nil {
			pre["number"] = *vs.Pre.Number
		}
		ctx[schema.PreRelease.Name()] = pre
	}

	putString(schema.Branch.Name(), vs.Branch)
	putString(schema.CommitHash.Name(), vs.CommitHash)
	putString(schema.LastBranch.Name(), vs.LastBranch)
	putString(schema.LastCommitHash.Name(), vs.LastCommitHash)
	if short, ok := vs.CommitHashShort(); ok {
		ctx[schema.CommitHashShort.Name()] = short
	}
	if short, ok := vs.LastCommitHashShort(); ok {
		ctx[schema.LastCommitHashShort.Name()] = short
	}

	if vs.Custom != nil {
		ctx["custom"] = vs.Custom
	}

	if v.Schema != nil {
		notation, err := v.Schema.Notation()
		if err != nil {
			return nil, err
		}
		ctx["schema"] = strings.TrimSpace(notation)
	}

	return ctx, nil
}
