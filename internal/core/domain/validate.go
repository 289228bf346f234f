// Package domain defines the core domain models for Rolodex.
package domain

import (
	"regexp"
	"strings"
)

// Field format rules. Names must start with an uppercase ASCII letter
// followed by at least two more letters. Zip is 5 or 6 digits, phone
// exactly 10 digits.
var (
	nameRe  = regexp.MustCompile(`^[A-Z][A-Za-z]{2,}$`)
	zipRe   = regexp.MustCompile(`^[0-9]{5,6}$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// minFreeTextLength is the minimum length for address, city and state.
const minFreeTextLength = 4

// Fixed validation messages, one per field rule.
const (
	MsgInvalidFirstName = "first name must start with a capital letter and have at least 3 letters"
	MsgInvalidLastName  = "last name must start with a capital letter and have at least 3 letters"
	MsgInvalidAddress   = "address must have at least 4 characters"
	MsgInvalidCity      = "city must have at least 4 characters"
	MsgInvalidState     = "state must have at least 4 characters"
	MsgInvalidZip       = "zip must be 5 or 6 digits"
	MsgInvalidPhone     = "phone number must be exactly 10 digits"
	MsgInvalidEmail     = "email must be a valid address"
)

// FieldIssue reports a single field that failed validation.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldRule checks one contact field and yields its issue on failure.
type fieldRule struct {
	field   string
	message string
	ok      func(string) bool
}

// rules are applied independently per field, in declaration order, so
// the first failing rule is deterministic.
var rules = []fieldRule{
	{"firstName", MsgInvalidFirstName, nameRe.MatchString},
	{"lastName", MsgInvalidLastName, nameRe.MatchString},
	{"address", MsgInvalidAddress, minLength(minFreeTextLength)},
	{"city", MsgInvalidCity, minLength(minFreeTextLength)},
	{"state", MsgInvalidState, minLength(minFreeTextLength)},
	{"zip", MsgInvalidZip, zipRe.MatchString},
	{"phoneNumber", MsgInvalidPhone, phoneRe.MatchString},
	{"email", MsgInvalidEmail, emailRe.MatchString},
}

func minLength(n int) func(string) bool {
	return func(s string) bool { return len(s) >= n }
}

func fieldValue(c *Contact, field string) string {
	switch field {
	case "firstName":
		return c.FirstName
	case "lastName":
		return c.LastName
	case "address":
		return c.Address
	case "city":
		return c.City
	case "state":
		return c.State
	case "zip":
		return c.Zip
	case "phoneNumber":
		return c.PhoneNumber
	case "email":
		return c.Email
	}
	return ""
}

// ValidateContact checks every field of the candidate contact against
// the format rules and returns all failing fields. A nil slice means
// the contact is well-formed. The check is pure and retains no state
// between calls.
func ValidateContact(c *Contact) []FieldIssue {
	var issues []FieldIssue
	for _, r := range rules {
		if !r.ok(fieldValue(c, r.field)) {
			issues = append(issues, FieldIssue{Field: r.field, Message: r.message})
		}
	}
	return issues
}

// Validate returns a DomainError with code RX-CONT-4001 describing the
// first failing rule, or nil when all fields are well-formed.
func (c *Contact) Validate() error {
	issues := ValidateContact(c)
	if len(issues) == 0 {
		return nil
	}

	parts := make([]string, 0, len(issues))
	for _, is := range issues {
		parts = append(parts, is.Message)
	}
	return ErrContactValidation.WithDetails(strings.Join(parts, "; "))
}
