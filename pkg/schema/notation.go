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
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verskit/verskit/pkg/errors"
)

// The schema notation is a YAML document with three named lists:
//
//	core: [major, minor, patch]
//	extra_core: [pre_release]
//	build: ["str:build", 42, "ts:compact_date", "custom:metadata.author"]
//
// Elements: a bare integer is an integer literal; "str:<text>" a string
// literal; "ts:<pattern>" a timestamp reference; "custom:<dot.path>" a
// custom-variable reference; a known variable name a variable reference.

type notationDoc struct {
	Core      []Component `yaml:"core"`
	ExtraCore []Component `yaml:"extra_core"`
	Build     []Component `yaml:"build"`
}

// Parse reads schema notation and validates the result. Parse failures carry
// the offending line and column.
func Parse(text string) (*Schema, error) {
	var doc notationDoc
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		if se, ok := err.(*errors.StructuredError); ok {
			return nil, se
		}
		return nil, errors.Wrap(errors.ErrCodeParse, "invalid schema notation", err)
	}
	return New(doc.Core, doc.ExtraCore, doc.Build)
}

// Notation renders the schema in notation form, flow-style lists.
func (s *Schema) Notation() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sec := range []struct {
		name  Section
		comps []Component
	}{
		{SectionCore, s.core}, {SectionExtraCore, s.extraCore}, {SectionBuild, s.build},
	} {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, c := range sec.comps {
			seq.Content = append(seq.Content, c.scalarNode())
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(sec.name)},
			seq,
		)
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to render schema notation", err)
	}
	return string(out), nil
}

func (c Component) scalarNode() *yaml.Node {
	if n, ok := c.IntValue(); ok {
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatUint(n, 10),
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: c.String()}
}

// MarshalYAML renders the component as its notation element.
func (c Component) MarshalYAML() (any, error) {
	if n, ok := c.IntValue(); ok {
		return n, nil
	}
	return c.String(), nil
}

// UnmarshalYAML parses a notation element.
func (c *Component) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return notationError(node, "expected a scalar notation element")
	}

	if node.Tag == "!!int" {
		n, err := strconv.ParseUint(node.Value, 10, 64)
		if err != nil {
			return notationError(node, fmt.Sprintf("invalid integer literal %q", node.Value))
		}
		*c = Integer(n)
		return nil
	}

	value := node.Value
	switch {
	case strings.HasPrefix(value, "str:"):
		*c = Str(strings.TrimPrefix(value, "str:"))
	case strings.HasPrefix(value, "ts:"):
		pattern := strings.TrimPrefix(value, "ts:")
		if pattern == "" {
			return notationError(node, "timestamp reference requires a pattern")
		}
		*c = TimestampRef(pattern)
	default:
		v, err := ParseVar(value)
		if err != nil {
			return notationErrorWithCause(node, err)
		}
		*c = Ref(v)
	}
	return nil
}

func notationError(node *yaml.Node, msg string) error {
	return errors.NewWithContext(
		errors.ErrCodeParse,
		fmt.Sprintf("%s at line %d column %d", msg, node.Line, node.Column),
		map[string]any{"line": node.Line, "column": node.Column},
	)
}

func notationErrorWithCause(node *yaml.Node, cause error) error {
	return errors.WrapWithContext(
		errors.ErrCodeParse,
		fmt.Sprintf("invalid notation element at line %d column %d", node.Line, node.Column),
		cause,
		map[string]any{"line": node.Line, "column": node.Column},
	)
}
