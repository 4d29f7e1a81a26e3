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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/verskit/verskit/pkg/engine"
	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/format"
	"github.com/verskit/verskit/pkg/schema"
)

// Flags shared across commands.
var (
	inputFormatFlag = &cli.StringFlag{
		Name:    "input-format",
		Aliases: []string{"i"},
		Value:   string(format.Auto),
		Usage: fmt.Sprintf("Format of the input version string (supported values: %s)",
			strings.Join(format.Names(), ", ")),
		Sources: cli.EnvVars("VERSKIT_INPUT_FORMAT"),
	}

	outputFormatFlag = &cli.StringFlag{
		Name:    "output-format",
		Aliases: []string{"f"},
		Value:   string(format.SemVer),
		Usage:   "Format of the rendered version (supported values: semver, pep440)",
		Sources: cli.EnvVars("VERSKIT_OUTPUT_FORMAT"),
	}

	schemaFlag = &cli.StringFlag{
		Name:  "schema",
		Usage: "Inline schema notation (YAML with core, extra_core, and build lists)",
	}

	schemaFileFlag = &cli.StringFlag{
		Name:    "schema-file",
		Usage:   "Path to a schema notation file",
		Sources: cli.EnvVars("VERSKIT_SCHEMA_FILE"),
	}

	presetFlag = &cli.StringFlag{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage: fmt.Sprintf("Named schema preset (supported values: %s)",
			strings.Join(schema.PresetNames(), ", ")),
		Sources: cli.EnvVars("VERSKIT_PRESET"),
	}

	customFlag = &cli.StringFlag{
		Name:  "custom",
		Usage: "YAML map merged into the custom variables (e.g. 'team: core')",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the result to a file instead of stdout",
	}
)

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// readVersionInput returns the version string from the first positional
// argument, or from stdin when the argument is absent or "-".
func readVersionInput(cmd *cli.Command) (string, error) {
	arg := cmd.Args().First()
	if arg != "" && arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read version from stdin", err)
	}
	input := strings.TrimSpace(string(data))
	if input == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest,
			"no version input: pass a version argument or pipe one to stdin")
	}
	return input, nil
}

// parseVersionInput reads and parses the input version in the requested
// input format.
func parseVersionInput(cmd *cli.Command) (*engine.Version, error) {
	input, err := readVersionInput(cmd)
	if err != nil {
		return nil, err
	}

	f, err := format.ParseFormat(cmd.String("input-format"))
	if err != nil {
		return nil, err
	}
	return format.Parse(input, f)
}

// applySchemaFlags replaces the version's schema from --preset, --schema, or
// --schema-file. Smart presets consult the version's variables.
func applySchemaFlags(cmd *cli.Command, v *engine.Version) error {
	preset := cmd.String("preset")
	notation := cmd.String("schema")
	file := cmd.String("schema-file")

	set := 0
	for _, s := range []string{preset, notation, file} {
		if s != "" {
			set++
		}
	}
	if set == 0 {
		return nil
	}
	if set > 1 {
		return errors.New(errors.ErrCodeInvalidRequest,
			"--preset, --schema, and --schema-file are mutually exclusive")
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to read schema file %q", file), err)
		}
		notation = string(data)
	}

	var (
		sch *schema.Schema
		err error
	)
	if preset != "" {
		sch, err = schema.Preset(preset, v.Vars)
	} else {
		sch, err = schema.Parse(notation)
	}
	if err != nil {
		return err
	}

	v.Schema = sch
	return nil
}

// applyCustomFlag merges the --custom YAML map into the version's custom
// variables.
func applyCustomFlag(cmd *cli.Command, v *engine.Version) error {
	raw := cmd.String("custom")
	if raw == "" {
		return nil
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(raw), &data); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid custom data, expected a YAML map", err)
	}

	v.Vars.MergeCustom(data)
	return nil
}

// writeResult writes s (with a trailing newline) to the --output file, or to
// stdout when no file is named.
func writeResult(cmd *cli.Command, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	path := cmd.String("output")
	if path == "" {
		_, err := fmt.Fprint(cmd.Writer, s)
		return err
	}

	if err := os.WriteFile(path, []byte(s), 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to write output file %q", path), err)
	}
	return nil
}
