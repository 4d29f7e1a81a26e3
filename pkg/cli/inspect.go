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
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/verskit/verskit/pkg/format"
)

// inspection is the inspect command's output document.
type inspection struct {
	SemVer   string `yaml:"semver"`
	PEP440   string `yaml:"pep440"`
	Notation string `yaml:"notation"`
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		ArgsUsage:             "[VERSION]",
		Usage:                 "Render a version in every supported format at once",
		Description: `Parse a version string and print a YAML document with its rendering in
every supported output format plus its schema notation.

# Examples

  verskit inspect 2!1.2.3a1.post4+local.6
  echo 1.2.3-rc.1 | verskit inspect`,
		Flags: []cli.Flag{
			inputFormatFlag,
			schemaFlag,
			schemaFileFlag,
			presetFlag,
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, err := parseVersionInput(cmd)
			if err != nil {
				return err
			}
			if err := applySchemaFlags(cmd, v); err != nil {
				return err
			}

			var doc inspection
			g, _ := errgroup.WithContext(ctx)
			g.Go(func() error {
				s, err := format.Render(v, format.SemVer)
				doc.SemVer = s
				return err
			})
			g.Go(func() error {
				s, err := format.Render(v, format.PEP440)
				doc.PEP440 = s
				return err
			})
			g.Go(func() error {
				s, err := v.Schema.Notation()
				doc.Notation = strings.TrimSpace(s)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out, err := yaml.Marshal(doc)
			if err != nil {
				return err
			}
			return writeResult(cmd, string(out))
		},
	}
}
