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
	"github.com/verskit/verskit/pkg/suggest"
	"github.com/verskit/verskit/pkg/timestamp"
	"github.com/verskit/verskit/pkg/vars"
)

// Preset names. The smart variants (standard, calver, and their
// -context/-no-context forms) pick a tier from repository state; the fixed
// variants name their tier explicitly.
const (
	PresetStandard                  = "standard"
	PresetStandardNoContext         = "standard-no-context"
	PresetStandardContext           = "standard-context"
	PresetStandardBase              = "standard-base"
	PresetStandardBasePre           = "standard-base-prerelease"
	PresetStandardBasePrePost       = "standard-base-prerelease-post"
	PresetStandardBasePrePostDev    = "standard-base-prerelease-post-dev"
	PresetStandardBaseCtx           = "standard-base-context"
	PresetStandardBasePreCtx        = "standard-base-prerelease-context"
	PresetStandardBasePrePostCtx    = "standard-base-prerelease-post-context"
	PresetStandardBasePrePostDevCtx = "standard-base-prerelease-post-dev-context"

	PresetCalver                  = "calver"
	PresetCalverNoContext         = "calver-no-context"
	PresetCalverContext           = "calver-context"
	PresetCalverBase              = "calver-base"
	PresetCalverBasePre           = "calver-base-prerelease"
	PresetCalverBasePrePost       = "calver-base-prerelease-post"
	PresetCalverBasePrePostDev    = "calver-base-prerelease-post-dev"
	PresetCalverBaseCtx           = "calver-base-context"
	PresetCalverBasePreCtx        = "calver-base-prerelease-context"
	PresetCalverBasePrePostCtx    = "calver-base-prerelease-post-context"
	PresetCalverBasePrePostDevCtx = "calver-base-prerelease-post-dev-context"
)

// PresetNames lists every preset name.
func PresetNames() []string {
	return []string{
		PresetStandard, PresetStandardNoContext, PresetStandardContext,
		PresetStandardBase, PresetStandardBasePre, PresetStandardBasePrePost,
		PresetStandardBasePrePostDev, PresetStandardBaseCtx,
		PresetStandardBasePreCtx, PresetStandardBasePrePostCtx,
		PresetStandardBasePrePostDevCtx,
		PresetCalver, PresetCalverNoContext, PresetCalverContext,
		PresetCalverBase, PresetCalverBasePre, PresetCalverBasePrePost,
		PresetCalverBasePrePostDev, PresetCalverBaseCtx,
		PresetCalverBasePreCtx, PresetCalverBasePrePostCtx,
		PresetCalverBasePrePostDevCtx,
	}
}

// tier selects which optional extra_core segments a preset variant carries.
type tier int

const (
	tierBase tier = iota
	tierPre
	tierPrePost
	tierPrePostDev
)

func standardCore() []Component {
	return []Component{Ref(Major), Ref(Minor), Ref(Patch)}
}

func calverCore() []Component {
	return []Component{
		TimestampRef(timestamp.PatternYYYY),
		TimestampRef(timestamp.PatternMM),
		TimestampRef(timestamp.PatternDD),
		Ref(Patch),
	}
}

func extraCoreFor(t tier) []Component {
	comps := []Component{Ref(Epoch)}
	if t >= tierPre {
		comps = append(comps, Ref(PreRelease))
	}
	if t >= tierPrePost {
		comps = append(comps, Ref(Post))
	}
	if t >= tierPrePostDev {
		comps = append(comps, Ref(Dev))
	}
	return comps
}

func buildContext() []Component {
	return []Component{Ref(Branch), Ref(Distance), Ref(CommitHashShort)}
}

func buildIfEnabled(withContext bool) []Component {
	if withContext {
		return buildContext()
	}
	return nil
}

// smartTier classifies the repository state: dirty trees carry the full
// segment set, distance ahead of a tag (or a pre-release that already has a
// post) carries pre-release and post, a plain pre-release carries just that,
// and a clean tag carries the minimal set.
func smartTier(vs *vars.Set) tier {
	switch {
	case vs.Dirty != nil && *vs.Dirty:
		return tierPrePostDev
	case (vs.Distance != nil && *vs.Distance > 0) || (vs.Pre != nil && vs.Post != nil):
		return tierPrePost
	case vs.Pre != nil:
		return tierPre
	default:
		return tierBase
	}
}

func smartBuildContext(vs *vars.Set) bool {
	return (vs.Dirty != nil && *vs.Dirty) || (vs.Distance != nil && *vs.Distance > 0)
}

// Preset returns the schema for a named preset. Smart variants consult the
// Version Variable Set; fixed variants ignore it. Presets are pure functions,
// never shared mutable state.
func Preset(name string, vs *vars.Set) (*Schema, error) {
	if vs == nil {
		vs = &vars.Set{}
	}

	core := standardCore
	fixed := name
	if calverName, ok := calverAlias(name); ok {
		core = calverCore
		fixed = calverName
	}

	switch fixed {
	case PresetStandard:
		return MustNew(core(), extraCoreFor(smartTier(vs)), buildIfEnabled(smartBuildContext(vs))), nil
	case PresetStandardNoContext:
		return MustNew(core(), extraCoreFor(smartTier(vs)), nil), nil
	case PresetStandardContext:
		return MustNew(core(), extraCoreFor(smartTier(vs)), buildContext()), nil
	case PresetStandardBase:
		return MustNew(core(), extraCoreFor(tierBase), nil), nil
	case PresetStandardBasePre:
		return MustNew(core(), extraCoreFor(tierPre), nil), nil
	case PresetStandardBasePrePost:
		return MustNew(core(), extraCoreFor(tierPrePost), nil), nil
	case PresetStandardBasePrePostDev:
		return MustNew(core(), extraCoreFor(tierPrePostDev), nil), nil
	case PresetStandardBaseCtx:
		return MustNew(core(), extraCoreFor(tierBase), buildContext()), nil
	case PresetStandardBasePreCtx:
		return MustNew(core(), extraCoreFor(tierPre), buildContext()), nil
	case PresetStandardBasePrePostCtx:
		return MustNew(core(), extraCoreFor(tierPrePost), buildContext()), nil
	case PresetStandardBasePrePostDevCtx:
		return MustNew(core(), extraCoreFor(tierPrePostDev), buildContext()), nil
	}

	ctx := map[string]any{"preset": name}
	msg := fmt.Sprintf("unknown schema preset %q", name)
	if hint, ok := suggest.Closest(name, PresetNames()); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", hint)
		ctx["suggestion"] = hint
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound, msg, ctx)
}

// calverAlias maps a calver preset name onto its standard-family twin; the
// families differ only in the core table.
func calverAlias(name string) (string, bool) {
	switch name {
	case PresetCalver:
		return PresetStandard, true
	case PresetCalverNoContext:
		return PresetStandardNoContext, true
	case PresetCalverContext:
		return PresetStandardContext, true
	case PresetCalverBase:
		return PresetStandardBase, true
	case PresetCalverBasePre:
		return PresetStandardBasePre, true
	case PresetCalverBasePrePost:
		return PresetStandardBasePrePost, true
	case PresetCalverBasePrePostDev:
		return PresetStandardBasePrePostDev, true
	case PresetCalverBaseCtx:
		return PresetStandardBaseCtx, true
	case PresetCalverBasePreCtx:
		return PresetStandardBasePreCtx, true
	case PresetCalverBasePrePostCtx:
		return PresetStandardBasePrePostCtx, true
	case PresetCalverBasePrePostDevCtx:
		return PresetStandardBasePrePostDevCtx, true
	default:
		return "", false
	}
}
