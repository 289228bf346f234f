// Package domain defines the core domain models for Rolodex.
package domain

import "strings"

// Contact represents a single address-book entry.
//
// All eight fields are required strings; a contact has no identity
// beyond its name fields. Field order matters for serialization and is
// fixed by the JSON tags below.
type Contact struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// ContactPatch is a partial contact used for merge updates. Nil fields
// are absent from the patch and leave the corresponding contact field
// unchanged.
type ContactPatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Zip         *string `json:"zip,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *ContactPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Address == nil &&
		p.City == nil && p.State == nil && p.Zip == nil &&
		p.PhoneNumber == nil && p.Email == nil
}

// Merge returns a copy of the contact with the patch applied. Supplied
// fields overwrite; absent fields retain their previous values. The
// receiver is not modified.
func (c Contact) Merge(p *ContactPatch) Contact {
	merged := c
	if p == nil {
		return merged
	}
	if p.FirstName != nil {
		merged.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		merged.LastName = *p.LastName
	}
	if p.Address != nil {
		merged.Address = *p.Address
	}
	if p.City != nil {
		merged.City = *p.City
	}
	if p.State != nil {
		merged.State = *p.State
	}
	if p.Zip != nil {
		merged.Zip = *p.Zip
	}
	if p.PhoneNumber != nil {
		merged.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		merged.Email = *p.Email
	}
	return merged
}

// MatchMode selects which name fields form the contact lookup key.
type MatchMode string

const (
	// MatchFirstName keys contacts by first name only.
	MatchFirstName MatchMode = "first_name"

	// MatchFullName keys contacts by first and last name.
	MatchFullName MatchMode = "full_name"
)

// CaseMode selects how name keys are compared.
type CaseMode string

const (
	// CaseSensitive compares name keys byte for byte.
	CaseSensitive CaseMode = "sensitive"

	// CaseInsensitive compares name keys ignoring ASCII case.
	CaseInsensitive CaseMode = "insensitive"
)

// Matcher compares contacts against lookup keys according to the
// configured match and case modes.
type Matcher struct {
	Mode MatchMode
	Case CaseMode
}

// NewMatcher builds a Matcher, falling back to full-name,
// case-sensitive matching for unknown mode values.
func NewMatcher(mode MatchMode, cs CaseMode) Matcher {
	if mode != MatchFirstName && mode != MatchFullName {
		mode = MatchFullName
	}
	if cs != CaseSensitive && cs != CaseInsensitive {
		cs = CaseSensitive
	}
	return Matcher{Mode: mode, Case: cs}
}

// equal compares two strings under the matcher's case mode.
func (m Matcher) equal(a, b string) bool {
	if m.Case == CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// MatchesKey reports whether the contact matches the lookup key. For
// MatchFullName the key is "<firstName> <lastName>"; a key without a
// space falls back to first-name matching so that path parameters like
// /contacts/John keep working under either mode.
func (m Matcher) MatchesKey(c Contact, key string) bool {
	key = strings.TrimSpace(key)
	if m.Mode == MatchFullName {
		if first, last, ok := strings.Cut(key, " "); ok {
			return m.equal(c.FirstName, first) && m.equal(c.LastName, strings.TrimSpace(last))
		}
	}
	return m.equal(c.FirstName, key)
}

// SameName reports whether two contacts share the same name key. Used
// for duplicate detection on insert.
func (m Matcher) SameName(a, b Contact) bool {
	if m.Mode == MatchFirstName {
		return m.equal(a.FirstName, b.FirstName)
	}
	return m.equal(a.FirstName, b.FirstName) && m.equal(a.LastName, b.LastName)
}

// FilterEquals compares a stored field value against a query filter:
// case-insensitive equality with surrounding whitespace ignored on
// both sides.
func FilterEquals(stored, filter string) bool {
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(filter))
}
