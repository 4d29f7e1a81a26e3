// Package format is the codec front door: it parses version strings in a
// named or auto-detected format into the schema-driven model and renders
// the model back out.
package format
