// Package engine pairs a schema with its Version Variable Set and drives
// bump invocations against the pair.
//
// Version is the pivot type every format codec converts to and from. Its
// debug notation, a YAML document holding the schema and the variable set,
// round-trips losslessly through Parse and Notation.
package engine
