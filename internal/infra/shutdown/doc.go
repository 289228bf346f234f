// Package shutdown provides graceful shutdown for Rolodex.
//
// This package handles process termination:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Programmatic shutdown triggering
//   - Timeout-based forced shutdown
//   - Cleanup callback registration, executed in reverse order
package shutdown
