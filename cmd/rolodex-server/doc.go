// Package main provides the entry point for rolodex-server.
//
// The server exposes the Rolodex HTTP API:
//
//   - Address book creation and listing
//   - Contact CRUD, search and count queries
//   - Health probes and Prometheus metrics
//
// Usage:
//
//	rolodex-server [flags]
//	rolodex-server --config /path/to/config.yaml
//
// The server loads configuration from file and environment, opens the
// JSON snapshot store, and serves until SIGINT/SIGTERM.
package main
