// Package resolve turns schema components and variable references into
// sanitized output strings.
//
// Value resolves one component to a single string; ExpandedValues resolves a
// variable into its ordered labeled form for extra-core and build rendering.
// Both read the Version Variable Set without mutating it.
package resolve
