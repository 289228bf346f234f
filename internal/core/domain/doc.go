// Package domain defines the core domain models for Rolodex.
//
// It contains the Contact and address-book value types, the field
// validation rules applied before a contact is admitted to storage,
// and the structured domain errors surfaced to API callers.
//
// Domain models are pure value objects without IO dependencies or
// framework coupling.
package domain
