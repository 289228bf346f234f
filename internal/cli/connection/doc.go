// Package connection provides server communication for rolodex-cli.
//
// It wraps net/http with JSON request/response handling and maps
// error replies onto readable messages.
package connection
