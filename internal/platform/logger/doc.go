// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. When running under CI, records are enriched
// with CI metadata by CIHandler.
package logger
