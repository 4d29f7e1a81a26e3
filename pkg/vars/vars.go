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

package vars

import (
	"strings"
)

// shortHashLen is the number of leading commit-hash characters exposed as the
// short hash.
const shortHashLen = 7

// Label is a normalized pre-release label.
type Label string

const (
	LabelAlpha Label = "alpha"
	LabelBeta  Label = "beta"
	LabelRC    Label = "rc"
)

// ParseLabel normalizes a pre-release label string. Accepted spellings
// (case-insensitive): alpha/a, beta/b, rc/c/preview/pre.
func ParseLabel(s string) (Label, bool) {
	switch strings.ToLower(s) {
	case "alpha", "a":
		return LabelAlpha, true
	case "beta", "b":
		return LabelBeta, true
	case "rc", "c", "preview", "pre":
		return LabelRC, true
	default:
		return "", false
	}
}

// PreRelease holds a pre-release label and its optional number.
type PreRelease struct {
	Label  Label   `json:"label" yaml:"label"`
	Number *uint64 `json:"number,omitempty" yaml:"number,omitempty"`
}

// Set is the flat, resolved bag of version data that the schema, resolver,
// and bump engine read and mutate. Every field is independently optional;
// absence is represented by a nil pointer, never by a zero value.
type Set struct {
	Major *uint64     `json:"major,omitempty" yaml:"major,omitempty"`
	Minor *uint64     `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch *uint64     `json:"patch,omitempty" yaml:"patch,omitempty"`
	Epoch *uint64     `json:"epoch,omitempty" yaml:"epoch,omitempty"`
	Pre   *PreRelease `json:"pre_release,omitempty" yaml:"pre_release,omitempty"`
	Post  *uint64     `json:"post,omitempty" yaml:"post,omitempty"`
	Dev   *uint64     `json:"dev,omitempty" yaml:"dev,omitempty"`

	Distance *uint64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Dirty    *bool   `json:"dirty,omitempty" yaml:"dirty,omitempty"`

	// Current-commit context.
	Branch     *string `json:"branch,omitempty" yaml:"branch,omitempty"`
	CommitHash *string `json:"commit_hash,omitempty" yaml:"commit_hash,omitempty"`
	Timestamp  *uint64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Last-tagged-commit context.
	LastBranch     *string `json:"last_branch,omitempty" yaml:"last_branch,omitempty"`
	LastCommitHash *string `json:"last_commit_hash,omitempty" yaml:"last_commit_hash,omitempty"`
	LastTimestamp  *uint64 `json:"last_timestamp,omitempty" yaml:"last_timestamp,omitempty"`

	// Custom holds arbitrary nested key/value data addressed by
	// dot-separated paths.
	Custom map[string]any `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// CommitHashShort returns the first seven characters of the current commit
// hash.
func (s *Set) CommitHashShort() (string, bool) {
	return shortHash(s.CommitHash)
}

// LastCommitHashShort returns the first seven characters of the last-tagged
// commit hash.
func (s *Set) LastCommitHashShort() (string, bool) {
	return shortHash(s.LastCommitHash)
}

func shortHash(hash *string) (string, bool) {
	if hash == nil {
		return "", false
	}
	h := *hash
	if len(h) > shortHashLen {
		h = h[:shortHashLen]
	}
	return h, true
}

// GetCustom resolves a dot-separated path in the custom map. It returns
// (nil, false) on any missing segment, an empty key segment, or a leaf that
// is not a string, number, or boolean.
func (s *Set) GetCustom(path string) (any, bool) {
	if s.Custom == nil || path == "" {
		return nil, false
	}

	var current any = s.Custom
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			return nil, false
		}
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	switch current.(type) {
	case string, bool, int, int64, uint64, float64:
		return current, true
	default:
		return nil, false
	}
}

// MergeCustom deep-merges data into the custom map; scalar leaves in data win
// over existing entries.
func (s *Set) MergeCustom(data map[string]any) {
	if len(data) == 0 {
		return
	}
	if s.Custom == nil {
		s.Custom = make(map[string]any, len(data))
	}
	mergeMaps(s.Custom, data)
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				mergeMaps(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

// Clean marks the working tree clean: distance zero and not dirty, set
// atomically.
func (s *Set) Clean() {
	s.Distance = Uint(0)
	s.Dirty = Bool(false)
}

// DropContext forces a context-free state: the tree reads as clean and the
// current-commit branch, hash, and timestamp are discarded.
func (s *Set) DropContext() {
	s.Clean()
	s.Branch = nil
	s.CommitHash = nil
	s.Timestamp = nil
}

// Uint returns a pointer to v.
func Uint(v uint64) *uint64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
