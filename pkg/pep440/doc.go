// Package pep440 parses and renders PEP 440 version strings and converts
// them to and from the schema-driven version model.
//
// Parsing accepts the grammar's spelling variants (label aliases, dash and
// underscore separators, "-N" post releases) and normalizes them; rendering
// always produces the normalized form [N!]N(.N)*[{a|b|rc}N][.postN][.devN]
// [+local].
package pep440
