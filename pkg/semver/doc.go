// Package semver parses and renders Semantic Versioning 2.0.0 strings and
// converts them to and from the schema-driven version model.
//
// Parsing is strict: exactly three numeric core parts, no leading zeros, and
// pre-release and build identifiers per the SemVer grammar. Conversion keeps
// the structured fields it recognizes (epoch, post, dev, and the pre-release
// label) and carries everything else as literal components.
package semver
