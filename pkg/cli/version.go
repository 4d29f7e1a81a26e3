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

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/verskit/verskit/pkg/bump"
	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/format"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/suggest"
	"github.com/verskit/verskit/pkg/vars"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "version",
		EnableShellCompletion: true,
		ArgsUsage:             "[VERSION]",
		Usage:                 "Resolve, bump, and render a version",
		Description: `Parse a version string, apply overrides and bumps, and render the result.

The input version comes from the positional argument or stdin. Bumps cascade:
incrementing a field resets every lower-precedence field (precedence order is
epoch, major, minor, patch, pre-release label, pre-release number; post and
dev are additive). Overrides are absolute and never cascade.

# Examples

  # Bump the minor version
  verskit version --bump minor 1.2.3

  # Bump major by 2 and render as PEP 440
  verskit version --bump major=2 -f pep440 1.2.3

  # Move to a beta pre-release
  verskit version --bump pre-label=beta 1.2.3

  # Pin the patch number absolutely (no cascade)
  verskit version --set patch=7 1.2.3

  # Bump the second core component of a calver schema
  verskit version --preset calver-base --bump-at core:-1 2025.8.1`,
		Flags: []cli.Flag{
			inputFormatFlag,
			outputFormatFlag,
			schemaFlag,
			schemaFileFlag,
			presetFlag,
			customFlag,
			outputFlag,
			&cli.StringSliceFlag{
				Name:    "bump",
				Aliases: []string{"b"},
				Usage: `Relative bump as name[=amount] (repeatable). Names: epoch, major, minor,
	patch, post, dev, pre-number; pre-label takes a label instead of an
	amount (alpha, beta, rc).`,
			},
			&cli.StringSliceFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage: `Absolute override as name=value (repeatable). Names: epoch, major, minor,
	patch, post, dev, distance, pre-number, and pre-label (alpha, beta, rc).`,
			},
			&cli.StringSliceFlag{
				Name: "bump-at",
				Usage: `Schema-indexed bump as section:index[:amount] (repeatable). Sections:
	core, extra_core, build. Negative indices count from the section end.`,
			},
			&cli.BoolFlag{
				Name:  "dirty",
				Usage: "Mark the working tree dirty",
			},
			&cli.BoolFlag{
				Name:  "no-dirty",
				Usage: "Mark the working tree not dirty",
			},
			&cli.BoolFlag{
				Name:  "clean",
				Usage: "Mark the tree clean: distance zero and not dirty",
			},
			&cli.BoolFlag{
				Name:  "force-clean",
				Usage: "Drop all VCS context (branch, commit, timestamp, distance, dirty) before processing",
			},
			&cli.BoolFlag{
				Name:  "notation",
				Usage: "Print the schema and variables as a YAML document instead of a rendered version",
			},
			&cli.BoolFlag{
				Name:  "context",
				Usage: "Print the template context (every variable by name) as a YAML map",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("notation") && cmd.Bool("context") {
				return errors.New(errors.ErrCodeInvalidRequest,
					"--notation and --context are mutually exclusive")
			}

			outFormat, err := format.ParseFormat(cmd.String("output-format"))
			if err != nil {
				return err
			}

			v, err := parseVersionInput(cmd)
			if err != nil {
				return err
			}
			if err := applySchemaFlags(cmd, v); err != nil {
				return err
			}
			if err := applyCustomFlag(cmd, v); err != nil {
				return err
			}

			ops, err := buildOps(cmd)
			if err != nil {
				return err
			}
			if err := v.Apply(ops); err != nil {
				return err
			}

			var out string
			switch {
			case cmd.Bool("notation"):
				out, err = v.Notation()
			case cmd.Bool("context"):
				tc, tcErr := v.TemplateContext()
				if tcErr != nil {
					return tcErr
				}
				var data []byte
				data, err = yaml.Marshal(tc)
				out = string(data)
			default:
				out, err = format.Render(v, outFormat)
			}
			if err != nil {
				return err
			}

			return writeResult(cmd, out)
		},
	}
}

// buildOps translates the version command's flags into a single Ops value.
func buildOps(cmd *cli.Command) (bump.Ops, error) {
	ops := bump.Ops{
		ForceClean: cmd.Bool("force-clean"),
		DirtyTrue:  cmd.Bool("dirty"),
		DirtyFalse: cmd.Bool("no-dirty"),
		Clean:      cmd.Bool("clean"),
	}

	for _, entry := range cmd.StringSlice("set") {
		if err := applyOverrideEntry(&ops, entry); err != nil {
			return bump.Ops{}, err
		}
	}
	for _, entry := range cmd.StringSlice("bump") {
		if err := applyBumpEntry(&ops, entry); err != nil {
			return bump.Ops{}, err
		}
	}
	for _, entry := range cmd.StringSlice("bump-at") {
		sb, err := parseSchemaBump(entry)
		if err != nil {
			return bump.Ops{}, err
		}
		ops.SchemaBumps = append(ops.SchemaBumps, sb)
	}

	return ops, nil
}

func applyOverrideEntry(ops *bump.Ops, entry string) error {
	name, value, found := strings.Cut(entry, "=")
	if !found || name == "" || value == "" {
		return errors.Newf(errors.ErrCodeInvalidRequest,
			"invalid override %q, expected name=value", entry)
	}

	if name == "pre-label" {
		label, ok := vars.ParseLabel(value)
		if !ok {
			return errors.Newf(errors.ErrCodeInvalidRequest,
				"invalid pre-release label %q, expected alpha, beta, or rc", value)
		}
		ops.PreLabel = &label
		return nil
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return errors.Newf(errors.ErrCodeInvalidRequest,
			"invalid override value %q for %s, expected an unsigned integer", value, name)
	}

	switch name {
	case "epoch":
		ops.Epoch = vars.Uint(n)
	case "major":
		ops.Major = vars.Uint(n)
	case "minor":
		ops.Minor = vars.Uint(n)
	case "patch":
		ops.Patch = vars.Uint(n)
	case "pre-number":
		ops.PreNumber = vars.Uint(n)
	case "post":
		ops.Post = vars.Uint(n)
	case "dev":
		ops.Dev = vars.Uint(n)
	case "distance":
		ops.Distance = vars.Uint(n)
	default:
		return unknownOpName("override", name,
			[]string{"epoch", "major", "minor", "patch", "pre-label", "pre-number", "post", "dev", "distance"})
	}
	return nil
}

func applyBumpEntry(ops *bump.Ops, entry string) error {
	name, value, hasValue := strings.Cut(entry, "=")
	if name == "" {
		return errors.Newf(errors.ErrCodeInvalidRequest,
			"invalid bump %q, expected name or name=amount", entry)
	}

	if name == "pre-label" {
		if !hasValue {
			return errors.New(errors.ErrCodeInvalidRequest,
				"pre-label bump requires a label, e.g. --bump pre-label=beta")
		}
		label, ok := vars.ParseLabel(value)
		if !ok {
			return errors.Newf(errors.ErrCodeInvalidRequest,
				"invalid pre-release label %q, expected alpha, beta, or rc", value)
		}
		ops.BumpPreLabel = &label
		return nil
	}

	amount := uint64(1)
	if hasValue {
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return errors.Newf(errors.ErrCodeInvalidRequest,
				"invalid bump amount %q for %s, expected an unsigned integer", value, name)
		}
		amount = n
	}

	switch name {
	case "epoch":
		ops.BumpEpoch = vars.Uint(amount)
	case "major":
		ops.BumpMajor = vars.Uint(amount)
	case "minor":
		ops.BumpMinor = vars.Uint(amount)
	case "patch":
		ops.BumpPatch = vars.Uint(amount)
	case "pre-number":
		ops.BumpPreNumber = vars.Uint(amount)
	case "post":
		ops.BumpPost = vars.Uint(amount)
	case "dev":
		ops.BumpDev = vars.Uint(amount)
	default:
		return unknownOpName("bump", name,
			[]string{"epoch", "major", "minor", "patch", "pre-label", "pre-number", "post", "dev"})
	}
	return nil
}

// parseSchemaBump reads a section:index[:amount] target.
func parseSchemaBump(entry string) (bump.SchemaBump, error) {
	parts := strings.Split(entry, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return bump.SchemaBump{}, errors.Newf(errors.ErrCodeInvalidRequest,
			"invalid bump target %q, expected section:index or section:index:amount", entry)
	}

	sec, err := parseSection(parts[0])
	if err != nil {
		return bump.SchemaBump{}, err
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return bump.SchemaBump{}, errors.Newf(errors.ErrCodeInvalidRequest,
			"invalid component index %q in %q, expected an integer", parts[1], entry)
	}

	amount := uint64(1)
	if len(parts) == 3 {
		amount, err = strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return bump.SchemaBump{}, errors.Newf(errors.ErrCodeInvalidRequest,
				"invalid bump amount %q in %q, expected an unsigned integer", parts[2], entry)
		}
	}

	return bump.SchemaBump{Section: sec, Index: index, Amount: amount}, nil
}

func parseSection(s string) (schema.Section, error) {
	for _, sec := range schema.Sections() {
		if s == string(sec) {
			return sec, nil
		}
	}

	names := make([]string, 0, len(schema.Sections()))
	for _, sec := range schema.Sections() {
		names = append(names, string(sec))
	}
	return "", unknownOpName("section", s, names)
}

func unknownOpName(kind, name string, valid []string) error {
	ctx := map[string]any{kind: name}
	msg := fmt.Sprintf("unknown %s %q (supported values: %s)", kind, name, strings.Join(valid, ", "))
	if hint, ok := suggest.Closest(name, valid); ok {
		msg = fmt.Sprintf("unknown %s %q (did you mean %s?)", kind, name, hint)
		ctx["suggestion"] = hint
	}
	return errors.NewWithContext(errors.ErrCodeInvalidRequest, msg, ctx)
}
