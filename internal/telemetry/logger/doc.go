// Package logger provides structured logging for Rolodex.
//
// This package wraps log/slog for structured logging:
//
//   - logger.go: logger configuration and initialization
//   - context.go: context-aware logging with request IDs
//   - redact.go: contact PII redaction
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Automatic masking of phone numbers and email addresses
//   - Context propagation for request tracing
package logger
