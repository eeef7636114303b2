// Package pkglog contains logging helpers used by the ulidgen tool.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON handler with stable keys.
//   - Attaching the run's correlation ID (when present) to each log record.
package pkglog
