// Package logging provides structured diagnostic logging for the scu
// runner: engine-level warnings and lifecycle notices that are never
// part of the JSON command-stream protocol (see internal/protocol),
// only ever operator-facing diagnostics.
//
// # Architecture
//
// Logging is built directly on log/slog: a package-level text-handler
// logger, one severity threshold set at InitForCLI time, and a small
// set of subsystem-tagged helper functions.
//
// ## Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about runner operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// ## Structured Logging
// All log entries include:
//   - Timestamp with millisecond precision
//   - Log level (Debug, Info, Warn, Error)
//   - Subsystem identifier for categorization
//   - Message content with optional formatting
//   - Optional error information
//
// # Usage
//
//	import "scu/pkg/logging"
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("engine", "run %s: starting module %s", runID, moduleName)
//	logging.Debug("capture", "redirecting phase output to %s", path)
//	logging.Warn("capture", "failed to remove empty capture file %s", path)
//	logging.Error("engine", err, "run %s: capture file creation failed", runID)
//
// Logging is never written to the command stream: that stream is
// reserved exclusively for the JSON event protocol, and writing
// anything else to it would break any parser consuming it.
package logging
