// Package handler provides HTTP request handlers for Rolodex.
//
// This package implements the HTTP API endpoints for address book
// management, contact CRUD and contact queries.
package handler
