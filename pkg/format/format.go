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

package format

import (
	"fmt"

	"github.com/verskit/verskit/pkg/engine"
	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/pep440"
	"github.com/verskit/verskit/pkg/semver"
	"github.com/verskit/verskit/pkg/suggest"
)

// Format names a version string format.
type Format string

const (
	// SemVer is Semantic Versioning 2.0.0.
	SemVer Format = "semver"
	// PEP440 is the Python packaging version scheme.
	PEP440 Format = "pep440"
	// Auto tries SemVer first and falls back to PEP 440 when parsing.
	Auto Format = "auto"
)

// Names lists the accepted format names.
func Names() []string {
	return []string{string(SemVer), string(PEP440), string(Auto)}
}

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case SemVer, PEP440, Auto:
		return Format(s), nil
	}

	ctx := map[string]any{"format": s}
	msg := fmt.Sprintf("unknown format %q", s)
	if hint, ok := suggest.Closest(s, Names()); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", hint)
		ctx["suggestion"] = hint
	}
	return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, msg, ctx)
}

// Parse reads a version string in the given format into the schema-driven
// model. Auto tries SemVer first, then PEP 440, and reports both failures
// when neither matches.
func Parse(input string, f Format) (*engine.Version, error) {
	switch f {
	case SemVer:
		return parseSemVer(input)
	case PEP440:
		return parsePEP440(input)
	case Auto:
		v, semverErr := parseSemVer(input)
		if semverErr == nil {
			return v, nil
		}
		v, pepErr := parsePEP440(input)
		if pepErr == nil {
			return v, nil
		}
		return nil, errors.NewWithContext(
			errors.ErrCodeParse,
			fmt.Sprintf("version %q matches neither semver nor PEP 440", input),
			map[string]any{
				"input":  input,
				"semver": semverErr.Error(),
				"pep440": pepErr.Error(),
			},
		)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidRequest, "unknown format %q", string(f))
	}
}

// Render writes the version in the given format. Auto is a parse-side
// concept only.
func Render(v *engine.Version, f Format) (string, error) {
	switch f {
	case SemVer:
		return semver.FromVersion(v).String(), nil
	case PEP440:
		return pep440.FromVersion(v).String(), nil
	case Auto:
		return "", errors.New(errors.ErrCodeInvalidRequest,
			"auto format cannot be rendered, pick semver or pep440")
	default:
		return "", errors.Newf(errors.ErrCodeInvalidRequest, "unknown format %q", string(f))
	}
}

func parseSemVer(input string) (*engine.Version, error) {
	sv, err := semver.Parse(input)
	if err != nil {
		return nil, err
	}
	return semver.ToVersion(sv)
}

func parsePEP440(input string) (*engine.Version, error) {
	pv, err := pep440.Parse(input)
	if err != nil {
		return nil, err
	}
	return pep440.ToVersion(pv)
}
