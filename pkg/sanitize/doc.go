// Package sanitize provides composable string transforms that enforce a
// version format's character, case, and zero-padding rules.
//
// Each output format carries its own sanitizer: PEP440 local segments are
// lowercase with dots and no leading zeros, SemVer identifiers preserve case,
// and numeric contexts extract digits only. All sanitizers are idempotent:
// applying one twice yields the same result as applying it once.
package sanitize
