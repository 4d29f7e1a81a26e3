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
	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

// Ops collects every mutation of a single invocation: context control,
// absolute overrides, relative bumps, and schema-indexed bumps. A nil
// pointer means "not requested".
type Ops struct {
	// ForceClean drops all VCS context before anything else runs.
	ForceClean bool

	// Overrides (absolute, no side effects on other fields).
	Major     *uint64
	Minor     *uint64
	Patch     *uint64
	Epoch     *uint64
	PreLabel  *vars.Label
	PreNumber *uint64
	Post      *uint64
	Dev       *uint64
	Distance  *uint64

	// DirtyTrue and DirtyFalse mark the tree state explicitly; supplying
	// both is a conflict. Clean sets distance=0 and dirty=false atomically
	// and conflicts with DirtyTrue and with a Distance override.
	DirtyTrue  bool
	DirtyFalse bool
	Clean      bool

	// Bumps (relative). BumpPreLabel moves the pre-release to the given
	// label with its number reset to zero.
	BumpEpoch     *uint64
	BumpMajor     *uint64
	BumpMinor     *uint64
	BumpPatch     *uint64
	BumpPreLabel  *vars.Label
	BumpPreNumber *uint64
	BumpPost      *uint64
	BumpDev       *uint64

	// SchemaBumps address components by section and index.
	SchemaBumps []SchemaBump
}

// SchemaBump increments the component at a section index. Negative indices
// count from the end of the section.
type SchemaBump struct {
	Section schema.Section
	Index   int
	Amount  uint64
}

// validateConflicts rejects mutually exclusive overrides.
func (o Ops) validateConflicts() error {
	if o.DirtyTrue && o.DirtyFalse {
		return errors.New(errors.ErrCodeConflict,
			"dirty and not-dirty overrides are mutually exclusive")
	}
	if o.Clean && o.DirtyTrue {
		return errors.New(errors.ErrCodeConflict,
			"clean override conflicts with a dirty override")
	}
	if o.Clean && o.Distance != nil {
		return errors.New(errors.ErrCodeConflict,
			"clean override conflicts with an explicit distance override")
	}
	return nil
}
