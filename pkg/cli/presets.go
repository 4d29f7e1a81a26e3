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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/verskit/verskit/pkg/schema"
)

func presetsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "presets",
		EnableShellCompletion: true,
		Usage:                 "List the named schema presets",
		Description: `List every schema preset name, one per line.

The smart presets (standard, calver, and their -context/-no-context forms)
pick their pre-release/post/dev tier from repository state; the fixed
variants name the tier explicitly.`,
		Flags: []cli.Flag{
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeResult(cmd, strings.Join(schema.PresetNames(), "\n"))
		},
	}
}
