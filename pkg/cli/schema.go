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
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/verskit/verskit/pkg/errors"
	"github.com/verskit/verskit/pkg/schema"
	"github.com/verskit/verskit/pkg/vars"
)

func schemaCmd() *cli.Command {
	return &cli.Command{
		Name:                  "schema",
		EnableShellCompletion: true,
		Usage:                 "Validate a schema notation and print its normalized form",
		Description: `Resolve a schema from a preset name, an inline notation, a notation file,
or stdin, validate it, and print the normalized notation.

Validation enforces section placement: primary variables (major, minor,
patch) appear only in core, each at most once, in ascending order and with
no gaps in the chain; secondary variables (epoch, pre_release, post, dev)
appear only in extra_core, each at most once. Literals, timestamp patterns,
and context variables are free to appear in any section, and every
timestamp pattern must compile.

# Examples

  # Print a preset's schema
  verskit schema --preset standard-base

  # Validate an inline notation
  verskit schema --schema 'core: [major, minor, patch]'

  # Validate a notation file
  verskit schema --schema-file ./verskit.yaml`,
		Flags: []cli.Flag{
			schemaFlag,
			schemaFileFlag,
			presetFlag,
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sch, err := resolveSchemaArg(cmd)
			if err != nil {
				return err
			}

			notation, err := sch.Notation()
			if err != nil {
				return err
			}
			return writeResult(cmd, notation)
		},
	}
}

// resolveSchemaArg loads a schema from --preset, --schema, --schema-file, or
// stdin, in that order of preference.
func resolveSchemaArg(cmd *cli.Command) (*schema.Schema, error) {
	if preset := cmd.String("preset"); preset != "" {
		return schema.Preset(preset, &vars.Set{})
	}

	notation := cmd.String("schema")
	if file := cmd.String("schema-file"); file != "" {
		if notation != "" {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				"--schema and --schema-file are mutually exclusive")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to read schema file %q", file), err)
		}
		notation = string(data)
	}

	if notation == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read schema from stdin", err)
		}
		notation = strings.TrimSpace(string(data))
		if notation == "" {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				"no schema input: pass --preset, --schema, --schema-file, or pipe a notation to stdin")
		}
	}

	return schema.Parse(notation)
}
