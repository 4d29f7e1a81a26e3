// Package timestamp formats unix timestamps for calendar-versioning schema
// components.
//
// Patterns are sequences of two-character tokens (YYYY, MM, 0M, DD, 0D, HH,
// 0H, mm, 0m, SS, 0S, WW, 0W), a named alias (compact_date,
// compact_datetime), or a %-style custom format. All formatting is UTC.
package timestamp
