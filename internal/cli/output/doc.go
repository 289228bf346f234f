// Package output provides output formatting for rolodex-cli.
//
// Two formats are supported: an ASCII table for terminals and
// indented JSON for scripting.
package output
