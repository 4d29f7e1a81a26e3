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
	"strings"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/suggest"
	"github.com/verskit/verskit/pkg/vars"
)

// Var is a symbolic reference to a Version Variable Set member. Custom-map
// references carry a dot-separated path.
type Var struct {
	name string
	path string
}

// The closed set of variable references a schema component may name.
var (
	Major               = Var{name: "major"}
	Minor               = Var{name: "minor"}
	Patch               = Var{name: "patch"}
	Epoch               = Var{name: "epoch"}
	PreRelease          = Var{name: "pre_release"}
	Post                = Var{name: "post"}
	Dev                 = Var{name: "dev"}
	Distance            = Var{name: "distance"}
	Dirty               = Var{name: "dirty"}
	Branch              = Var{name: "branch"}
	CommitHash          = Var{name: "commit_hash"}
	CommitHashShort     = Var{name: "commit_hash_short"}
	Timestamp           = Var{name: "timestamp"}
	LastBranch          = Var{name: "last_branch"}
	LastCommitHash      = Var{name: "last_commit_hash"}
	LastCommitHashShort = Var{name: "last_commit_hash_short"}
	LastTimestamp       = Var{name: "last_timestamp"}
)

// Custom returns a reference to a custom-map entry addressed by a
// dot-separated path.
func Custom(path string) Var {
	return Var{name: "custom", path: path}
}

// Name returns the notation spelling of the variable.
func (v Var) Name() string {
	if v.name == "custom" {
		return "custom:" + v.path
	}
	return v.name
}

// CustomPath returns the dot path of a custom reference.
func (v Var) CustomPath() (string, bool) {
	if v.name != "custom" {
		return "", false
	}
	return v.path, true
}

// IsPrimary reports whether the variable is major, minor, or patch.
func (v Var) IsPrimary() bool {
	return v == Major || v == Minor || v == Patch
}

// IsSecondary reports whether the variable is epoch, pre-release, post, or
// dev.
func (v Var) IsSecondary() bool {
	return v == Epoch || v == PreRelease || v == Post || v == Dev
}

// IsContext reports whether the variable has unrestricted placement.
func (v Var) IsContext() bool {
	return !v.IsPrimary() && !v.IsSecondary()
}

// primaryRank orders major < minor < patch for core-section validation.
func (v Var) primaryRank() int {
	switch v {
	case Major:
		return 0
	case Minor:
		return 1
	case Patch:
		return 2
	default:
		return -1
	}
}

// Field maps the variable onto its Version Variable Set field, when it has
// one addressable by the bump engine.
func (v Var) Field() (vars.Field, bool) {
	switch v {
	case Major, Minor, Patch, Epoch, PreRelease, Post, Dev, Distance, Dirty:
		return vars.Field(v.name), true
	default:
		return "", false
	}
}

var namedVars = []Var{
	Major, Minor, Patch, Epoch, PreRelease, Post, Dev,
	Distance, Dirty, Branch, CommitHash, CommitHashShort, Timestamp,
	LastBranch, LastCommitHash, LastCommitHashShort, LastTimestamp,
}

// VarNames lists every non-custom variable name in notation spelling.
func VarNames() []string {
	names := make([]string, 0, len(namedVars))
	for _, v := range namedVars {
		names = append(names, v.name)
	}
	return names
}

// ParseVar resolves a notation spelling to a Var. Custom references use the
// "custom:<dot.path>" form.
func ParseVar(s string) (Var, error) {
	if path, ok := strings.CutPrefix(s, "custom:"); ok {
		if path == "" {
			return Var{}, errors.New(errors.ErrCodeParse, "custom variable reference requires a path")
		}
		return Custom(path), nil
	}
	for _, v := range namedVars {
		if v.name == s {
			return v, nil
		}
	}
	ctx := map[string]any{"name": s}
	msg := "unknown variable " + s
	if hint, ok := suggest.Closest(s, VarNames()); ok {
		msg += " (did you mean " + hint + "?)"
		ctx["suggestion"] = hint
	}
	return Var{}, errors.NewWithContext(errors.ErrCodeParse, msg, ctx)
}
