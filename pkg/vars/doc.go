// Package vars defines the Version Variable Set: the flat, resolved bag of
// version data (numbers, flags, VCS context, a nested custom map) that the
// schema, resolver, and bump engine read and mutate.
//
// Every field is independently optional. Absent numeric fields default to
// zero only when bumped, never when read or overridden.
package vars
