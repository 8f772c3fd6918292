// Package logging provides structured logging for attctl.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the entire application.
//
// # Features
//
//   - JSON output for machine consumption, text output for terminals
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Rotated file output via lumberjack when output is "file"
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr, file
//
// Diagnostics default to stderr so that command output (names, value
// triples) stays clean on stdout.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("instrument registered", "name", "att0", "address", "/dev/ttyACM0")
//	logger.Error("query failed", "error", err)
package logging
