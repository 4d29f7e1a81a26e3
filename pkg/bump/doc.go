// Package bump mutates a Version Variable Set through overrides, relative
// field bumps, and schema-indexed component bumps.
//
// Field bumps follow a fixed precedence: epoch, major, minor, patch,
// pre-release label, pre-release number, post, dev. Bumping a field resets
// every field strictly below it, except post and dev whose bumps are purely
// additive. An absolute override of a field suppresses a bump of the same
// field entirely, including its cascade.
package bump
