// Package logging provides structured logging for pulse.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// persistent context attributes, so hub and registry activity can be
// filtered after the fact.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (component, registry key, subscription token)
//   - Log rotation with configurable size limits
//   - Optional gzip compression for rotated logs
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The [Logger] type
// uses Go's slog internally which is designed for concurrent access. The
// [RotatingWriter] type uses a mutex to protect file operations during
// rotation. Child loggers created via With* methods share the underlying
// writer safely.
//
// # Basic Usage
//
// Create a logger writing to a directory:
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Debug("detailed info", "key", "value")
//	logger.Info("round delivered", "subscribers", 2)
//	logger.Warn("subscriber slow", "token", "sub-3")
//	logger.Error("delivery failed", "error", err.Error())
//
// # Context Propagation
//
// Create child loggers with persistent context attributes:
//
//	hubLogger := logger.WithComponent("hub")
//	keyLogger := logger.WithComponent("registry").WithKey("Large Circle")
//
//	// All logs from keyLogger will include component and key
//	keyLogger.Info("template registered")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"template registered","component":"registry","key":"Large Circle"}
//
// # Log Rotation
//
// The log file is rotated when it exceeds the configured size. Rotated files
// are named pulse.log.1, pulse.log.2, etc., where .1 is the most recent
// backup. When compression is enabled, rotated files become pulse.log.1.gz.
//
// # Testing
//
// For testing, use [NopLogger] to discard all log output without creating
// files.
package logging
