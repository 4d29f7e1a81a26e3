// Package schema defines the component model and the always-valid version
// schema.
//
// A schema holds three ordered component sequences: core, extra_core, and
// build. Components are a closed set of four cases: literal string, literal
// integer, variable reference, and timestamp-pattern reference. Placement
// rules are enforced at construction and on every mutation, so an invalid
// schema is unrepresentable: primaries (major, minor, patch) live only in
// core, ascending and unique; secondaries (epoch, pre_release, post, dev)
// live only in extra_core, each at most once; context variables go anywhere.
//
// Schemas come from a named preset (standard and calver families), from the
// YAML notation (Parse), or from index-addressed edits of an existing schema
// (ReplaceComponentAt), which re-validate after the edit.
package schema
