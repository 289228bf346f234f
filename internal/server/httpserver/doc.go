// Package httpserver provides the HTTP/HTTPS server for Rolodex.
//
// It uses the Go standard library net/http for implementation,
// providing RESTful API endpoints for address book and contact
// management. Cross-cutting request concerns (request IDs, panic
// recovery, CORS, rate limiting, access logging, metrics) are
// implemented as composable middleware.
package httpserver
