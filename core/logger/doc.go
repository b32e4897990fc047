// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both CLI use (console
// encoding, colored levels) and server use (json encoding).
//
// # Context Awareness
//
// The WithRayID helper extracts the per-request ray ID from a Fiber
// context and attaches it to the log entry, so all logs belonging to one
// API request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("journal loaded", zap.Int("entries", n))
package logger
