// Package service provides the domain services for Rolodex.
//
// BookService manages address-book lifecycle; ContactService covers
// contact CRUD and the filter/count queries. Both validate their
// inputs, delegate persistence to a Repository and return DomainErrors
// that the HTTP layer maps to status codes.
package service
