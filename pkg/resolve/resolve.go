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

package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verskit/verskit/pkg/sanitize"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/timestamp"
	"github.com/verskit/verskit/pkg/vars"
)

// Value resolves a component against a Version Variable Set into a single
// sanitized string. The second return is false when the component's variable
// is absent. Timestamp-pattern components format the current-commit
// timestamp only; without one they resolve absent.
func Value(c schema.Component, vs *vars.Set, san sanitize.Sanitizer) (string, bool) {
	switch c.Kind() {
	case schema.KindString:
		s, _ := c.StrValue()
		return san.Apply(s), true
	case schema.KindInteger:
		n, _ := c.IntValue()
		return san.Apply(strconv.FormatUint(n, 10)), true
	case schema.KindTimestamp:
		pattern, _ := c.Pattern()
		if vs.Timestamp == nil {
			return "", false
		}
		formatted, err := timestamp.Format(pattern, *vs.Timestamp)
		if err != nil {
			return "", false
		}
		return san.Apply(formatted), true
	default:
		v, _ := c.Var()
		raw, ok := rawValue(v, vs)
		if !ok {
			return "", false
		}
		return san.Apply(raw), true
	}
}

// ExpandedValues resolves a variable into its ordered labeled form: [label,
// value] for most variables, [label] or [label, number] for pre-release, the
// sanitized path segments plus value for custom references, and [value]
// alone for timestamps.
func ExpandedValues(v schema.Var, vs *vars.Set, valueSan, keySan sanitize.Sanitizer) ([]string, bool) {
	if path, ok := v.CustomPath(); ok {
		value, present := vs.GetCustom(path)
		if !present {
			return nil, false
		}
		segments := splitKey(keySan.Apply(path), keySan)
		return append(segments, valueSan.Apply(formatScalar(value))), true
	}

	if v == schema.PreRelease {
		if vs.Pre == nil {
			return nil, false
		}
		out := []string{valueSan.Apply(string(vs.Pre.Label))}
		if vs.Pre.Number != nil {
			out = append(out, valueSan.Apply(strconv.FormatUint(*vs.Pre.Number, 10)))
		}
		return out, true
	}

	raw, ok := rawValue(v, vs)
	if !ok {
		return nil, false
	}
	return []string{expandedLabel(v), valueSan.Apply(raw)}, true
}

// expandedLabel is the label a variable carries in expanded form. Commit
// hashes shorten their labels; everything else uses its own name.
func expandedLabel(v schema.Var) string {
	switch v {
	case schema.CommitHashShort:
		return "commit"
	case schema.LastCommitHash:
		return "last_commit"
	case schema.LastCommitHashShort:
		return "last_commit_short"
	default:
		return v.Name()
	}
}

// rawValue reads a variable's unsanitized textual value.
func rawValue(v schema.Var, vs *vars.Set) (string, bool) {
	if path, ok := v.CustomPath(); ok {
		value, present := vs.GetCustom(path)
		if !present {
			return "", false
		}
		return formatScalar(value), true
	}

	switch v {
	case schema.Major:
		return uintValue(vs.Major)
	case schema.Minor:
		return uintValue(vs.Minor)
	case schema.Patch:
		return uintValue(vs.Patch)
	case schema.Epoch:
		return uintValue(vs.Epoch)
	case schema.Post:
		return uintValue(vs.Post)
	case schema.Dev:
		return uintValue(vs.Dev)
	case schema.Distance:
		return uintValue(vs.Distance)
	case schema.Timestamp:
		return uintValue(vs.Timestamp)
	case schema.LastTimestamp:
		return uintValue(vs.LastTimestamp)
	case schema.Dirty:
		if vs.Dirty == nil {
			return "", false
		}
		if *vs.Dirty {
			return "1", true
		}
		return "0", true
	case schema.PreRelease:
		// A pre-release resolves to its number in single-value position;
		// the label belongs to expanded form.
		if vs.Pre == nil || vs.Pre.Number == nil {
			return "", false
		}
		return strconv.FormatUint(*vs.Pre.Number, 10), true
	case schema.Branch:
		return stringValue(vs.Branch)
	case schema.LastBranch:
		return stringValue(vs.LastBranch)
	case schema.CommitHash:
		return stringValue(vs.CommitHash)
	case schema.LastCommitHash:
		return stringValue(vs.LastCommitHash)
	case schema.CommitHashShort:
		return vs.CommitHashShort()
	case schema.LastCommitHashShort:
		return vs.LastCommitHashShort()
	default:
		return "", false
	}
}

func uintValue(p *uint64) (string, bool) {
	if p == nil {
		return "", false
	}
	return strconv.FormatUint(*p, 10), true
}

func stringValue(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func formatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		// YAML numbers arrive as float64 for non-integers only.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func splitKey(sanitizedPath string, keySan sanitize.Sanitizer) []string {
	if keySan.Separator == "" || sanitizedPath == "" {
		if sanitizedPath == "" {
			return nil
		}
		return []string{sanitizedPath}
	}
	return strings.Split(sanitizedPath, keySan.Separator)
}
