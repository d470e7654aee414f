// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for the command-line tool.
//
// # Run Correlation
//
// Every export run gets a run identifier. The WithRunID helper attaches it
// to the log entry, ensuring that all logs produced by a single run can be
// correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Loaded reference list")
//
//	// At the start of a run:
//	l := logger.WithRunID(log, uuid.NewString())
//	l.Error("Export failed", zap.Error(err))
package logger
