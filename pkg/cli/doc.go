// Package cli implements the verskit command-line interface.
//
// The CLI exposes the version engine through four commands:
//
//   - version: parse a version string, apply overrides and precedence-ordered
//     bumps, and render the result in a chosen format
//   - schema: validate a schema notation (preset, inline, file, or stdin) and
//     print its normalized form
//   - presets: list the named schema presets
//   - inspect: render a version in every supported format at once
//
// Version input arrives as a positional argument or on stdin; results go to
// stdout or to a file named with --output. Flags carry env-var sources
// (VERSKIT_INPUT_FORMAT, VERSKIT_OUTPUT_FORMAT, VERSKIT_PRESET,
// VERSKIT_SCHEMA_FILE) so CI pipelines can configure the tool without
// editing invocations, and LOG_LEVEL controls the structured logger.
//
// Usage:
//
//	verskit version --bump minor 1.2.3
//	verskit version --preset calver --bump-at core:-1 2025.8.1
//	verskit schema --preset standard-base
//	echo 1.2.3-rc.1 | verskit inspect
package cli
