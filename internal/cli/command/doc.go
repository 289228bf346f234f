// Package command provides CLI command definitions for rolodex-cli.
//
// It uses urfave/cli/v2 for command parsing. Commands talk to a
// running rolodex-server over its HTTP API.
package command
