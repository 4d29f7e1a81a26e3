// Package logging provides structured logging utilities for verskit
// components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across the CLI and library layers.
// It supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("verskit", "v1.0.0")
//
//	    slog.Info("resolving version", "format", "semver")
//	    slog.Debug("schema selected", "preset", "standard")
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("verskit", "v1.0.0", "debug")
//	logger.Info("bump applied", "field", "minor")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug verskit version --bump-minor
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so that version strings on
// stdout stay pipeable:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "version resolved",
//	    "module": "verskit",
//	    "version": "v1.0.0"
//	}
package logging
