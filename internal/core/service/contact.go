// Package service provides the domain services for Rolodex.
package service

import (
	"context"
	"sort"
	"strings"

	"github.com/avelys/rolodex-go/internal/core/domain"
)

// ContactService handles contact CRUD and query operations.
type ContactService struct {
	repo Repository
}

// NewContactService creates a new ContactService.
func NewContactService(repo Repository) *ContactService {
	return &ContactService{repo: repo}
}

// AddContactRequest contains parameters for contact creation.
type AddContactRequest struct {
	Book    string
	Contact domain.Contact
}

// Add validates the candidate contact and appends it to the book.
// Validation runs before any mutation; a contact whose name key is
// already present is rejected by the repository.
func (s *ContactService) Add(ctx context.Context, req *AddContactRequest) (domain.Contact, error) {
	if req.Book == "" {
		return domain.Contact{}, domain.ErrMissingArgument.WithDetails("book name is required")
	}
	if err := req.Contact.Validate(); err != nil {
		return domain.Contact{}, err
	}
	return s.repo.AddContact(ctx, req.Book, req.Contact)
}

// List returns the full ordered contact sequence of a book.
func (s *ContactService) List(ctx context.Context, book string) ([]domain.Contact, error) {
	return s.repo.Contacts(ctx, book)
}

// SortBy selects the sort field for ListSorted.
type SortBy string

const (
	SortByFirstName SortBy = "firstName"
	SortByLastName  SortBy = "lastName"
	SortByZip       SortBy = "zip"
)

// ListSorted returns the book's contacts stably sorted by the given
// field. Unknown fields sort by first name.
func (s *ContactService) ListSorted(ctx context.Context, book string, by SortBy) ([]domain.Contact, error) {
	contacts, err := s.repo.Contacts(ctx, book)
	if err != nil {
		return nil, err
	}

	key := func(c domain.Contact) string {
		switch by {
		case SortByLastName:
			return c.LastName
		case SortByZip:
			return c.Zip
		default:
			return c.FirstName
		}
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return strings.ToLower(key(contacts[i])) < strings.ToLower(key(contacts[j]))
	})
	return contacts, nil
}

// LocationFilter carries the optional city/state query filters. Empty
// fields are absent. Supplied filters combine with logical AND.
type LocationFilter struct {
	City  string
	State string
}

// IsEmpty reports whether no filter field was supplied.
func (f LocationFilter) IsEmpty() bool {
	return f.City == "" && f.State == ""
}

// matches applies the AND combination of the supplied filters:
// case-insensitive, whitespace-trimmed equality per field.
func (f LocationFilter) matches(c domain.Contact) bool {
	if f.City != "" && !domain.FilterEquals(c.City, f.City) {
		return false
	}
	if f.State != "" && !domain.FilterEquals(c.State, f.State) {
		return false
	}
	return true
}

// Search returns the contacts of a book matching the location filter,
// in stored order. An empty filter matches everything.
func (s *ContactService) Search(ctx context.Context, book string, filter LocationFilter) ([]domain.Contact, error) {
	contacts, err := s.repo.Contacts(ctx, book)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if filter.matches(c) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// CountResult reports a count query result, echoing the filter values
// used. Absent filters echo as "N/A".
type CountResult struct {
	Count int    `json:"count"`
	City  string `json:"city"`
	State string `json:"state"`
}

// CountByLocation counts the contacts matching the location filter.
func (s *ContactService) CountByLocation(ctx context.Context, book string, filter LocationFilter) (*CountResult, error) {
	matched, err := s.Search(ctx, book, filter)
	if err != nil {
		return nil, err
	}

	result := &CountResult{Count: len(matched), City: "N/A", State: "N/A"}
	if filter.City != "" {
		result.City = filter.City
	}
	if filter.State != "" {
		result.State = filter.State
	}
	return result, nil
}

// UpdateContactRequest contains parameters for a partial contact update.
type UpdateContactRequest struct {
	Book  string
	Key   string
	Patch *domain.ContactPatch
}

// Update merges the patch onto the first contact matching the key and
// re-validates the merged record before it is persisted; an update
// that would produce an invalid contact is rejected.
func (s *ContactService) Update(ctx context.Context, req *UpdateContactRequest) (domain.Contact, error) {
	if req.Patch == nil || req.Patch.IsEmpty() {
		return domain.Contact{}, domain.ErrMissingArgument.WithDetails("no fields to update")
	}
	return s.repo.UpdateContact(ctx, req.Book, req.Key, func(existing domain.Contact) (domain.Contact, error) {
		merged := existing.Merge(req.Patch)
		if err := merged.Validate(); err != nil {
			return domain.Contact{}, err
		}
		return merged, nil
	})
}

// Delete removes the first contact matching the key. Deleting an
// absent key reports ErrContactNotFound every time.
func (s *ContactService) Delete(ctx context.Context, book, key string) error {
	if strings.TrimSpace(key) == "" {
		return domain.ErrMissingArgument.WithDetails("contact name is required")
	}
	return s.repo.DeleteContact(ctx, book, key)
}
