// Package main provides the entry point for rolodex-cli.
//
// The CLI tool provides command-line access to rolodex-server for:
//
//   - Address book management (create, list)
//   - Contact management (add, list, search, count, update, delete)
//
// Usage:
//
//	rolodex-cli [command] [flags]
//	rolodex-cli book create friends
//	rolodex-cli contact list --book friends --output json
package main
