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
	"strconv"
	"strings"
)

// Kind discriminates the four component cases.
type Kind int

const (
	// KindString is a literal string component.
	KindString Kind = iota
	// KindInteger is a literal unsigned-integer component.
	KindInteger
	// KindVar is a variable reference component.
	KindVar
	// KindTimestamp is a timestamp-pattern reference component.
	KindTimestamp
)

// Component is one schema building block: a literal string, a literal
// integer, a variable reference, or a timestamp-pattern reference. Components
// are immutable values; construct them through Str, Integer, Ref, and
// TimestampRef.
type Component struct {
	kind    Kind
	str     string
	num     uint64
	ref     Var
	pattern string
}

// Str returns a literal string component.
func Str(s string) Component {
	return Component{kind: KindString, str: s}
}

// Integer returns a literal integer component.
func Integer(n uint64) Component {
	return Component{kind: KindInteger, num: n}
}

// Ref returns a variable reference component.
func Ref(v Var) Component {
	return Component{kind: KindVar, ref: v}
}

// TimestampRef returns a timestamp-pattern reference component.
func TimestampRef(pattern string) Component {
	return Component{kind: KindTimestamp, pattern: pattern}
}

// Kind returns the component case.
func (c Component) Kind() Kind { return c.kind }

// StrValue returns the literal string when the component is a string literal.
func (c Component) StrValue() (string, bool) {
	return c.str, c.kind == KindString
}

// IntValue returns the literal integer when the component is an integer
// literal.
func (c Component) IntValue() (uint64, bool) {
	return c.num, c.kind == KindInteger
}

// Var returns the referenced variable when the component is a variable
// reference.
func (c Component) Var() (Var, bool) {
	return c.ref, c.kind == KindVar
}

// Pattern returns the timestamp pattern when the component is a timestamp
// reference.
func (c Component) Pattern() (string, bool) {
	return c.pattern, c.kind == KindTimestamp
}

// String renders the component in notation spelling. Used in notation output
// and error messages.
func (c Component) String() string {
	switch c.kind {
	case KindInteger:
		return strconv.FormatUint(c.num, 10)
	case KindString:
		return "str:" + c.str
	case KindTimestamp:
		return "ts:" + c.pattern
	default:
		return c.ref.Name()
	}
}

// formatComponents renders a section's content for error messages:
// [major, minor, patch].
func formatComponents(comps []Component) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
