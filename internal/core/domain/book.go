// Package domain defines the core domain models for Rolodex.
package domain

import "strings"

// MaxBookNameLength bounds address-book names.
const MaxBookNameLength = 64

// Book is a named, ordered collection of contacts. Contacts keep their
// insertion order.
type Book struct {
	Name     string    `json:"name"`
	Contacts []Contact `json:"contacts"`
}

// ValidateBookName checks an address-book name. Names must be
// non-empty after trimming, at most MaxBookNameLength characters, and
// must not contain a path separator (book names appear in URL paths
// and in the snapshot file).
func ValidateBookName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrBookNameInvalid.WithDetails("name is empty")
	}
	if len(trimmed) > MaxBookNameLength {
		return ErrBookNameInvalid.WithDetails("name exceeds 64 characters")
	}
	if strings.ContainsAny(trimmed, "/\\") {
		return ErrBookNameInvalid.WithDetails("name contains a path separator")
	}
	return nil
}
