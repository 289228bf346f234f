// Package service provides the domain services for Rolodex.
package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/storage/jsonfile"
)

func newServices(t *testing.T) (*BookService, *ContactService) {
	t.Helper()
	store, err := jsonfile.Open(jsonfile.Config{
		Path:    filepath.Join(t.TempDir(), "rolodex.json"),
		Matcher: domain.NewMatcher(domain.MatchFullName, domain.CaseSensitive),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewBookService(store), NewContactService(store)
}

func validContact(first, last string) domain.Contact {
	return domain.Contact{
		FirstName:   first,
		LastName:    last,
		Address:     "221B Baker St",
		City:        "London",
		State:       "Greater London",
		Zip:         "560001",
		PhoneNumber: "9876543210",
		Email:       "someone@example.com",
	}
}

func strptr(s string) *string { return &s }

func TestBookService_Create(t *testing.T) {
	books, _ := newServices(t)
	ctx := context.Background()

	if err := books.Create(ctx, &CreateBookRequest{Name: "Friends"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := books.Create(ctx, &CreateBookRequest{Name: "Friends"}); !errors.Is(err, domain.ErrBookExists) {
		t.Errorf("duplicate Create() error = %v", err)
	}
	if err := books.Create(ctx, &CreateBookRequest{Name: "  "}); !domain.IsDomainError(err, "RX-BOOK-4001") {
		t.Errorf("blank name Create() error = %v", err)
	}

	// Names are trimmed before use.
	if err := books.Create(ctx, &CreateBookRequest{Name: " Work "}); err != nil {
		t.Fatalf("Create() with padding error = %v", err)
	}
	list, err := books.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "Friends" || list[1].Name != "Work" {
		t.Errorf("List() = %+v", list)
	}
}

func TestContactService_AddAndList(t *testing.T) {
	books, contacts := newServices(t)
	ctx := context.Background()

	books.Create(ctx, &CreateBookRequest{Name: "Friends"})

	c := validContact("Amit", "Shah")
	stored, err := contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: c})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if stored != c {
		t.Errorf("Add() = %+v, want input echoed", stored)
	}

	// End to end: the stored record equals the input exactly once.
	listed, err := contacts.List(ctx, "Friends")
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0] != c {
		t.Errorf("List() = %+v, want exactly the added contact", listed)
	}

	// Validation runs before any mutation.
	bad := validContact("amit", "Shah")
	if _, err := contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: bad}); !errors.Is(err, domain.ErrContactValidation) {
		t.Errorf("Add() invalid contact error = %v", err)
	}
	listed, _ = contacts.List(ctx, "Friends")
	if len(listed) != 1 {
		t.Error("failed validation must not mutate the book")
	}

	if _, err := contacts.Add(ctx, &AddContactRequest{Book: "Nope", Contact: c}); !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("Add() to missing book error = %v", err)
	}
	if _, err := contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: c}); !errors.Is(err, domain.ErrContactExists) {
		t.Errorf("Add() duplicate error = %v", err)
	}
}

func TestContactService_ListSorted(t *testing.T) {
	books, contacts := newServices(t)
	ctx := context.Background()

	books.Create(ctx, &CreateBookRequest{Name: "Friends"})
	for _, c := range []domain.Contact{
		validContact("Zara", "Adams"),
		validContact("Amit", "Shah"),
		validContact("John", "Baker"),
	} {
		if _, err := contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: c}); err != nil {
			t.Fatal(err)
		}
	}

	byFirst, err := contacts.ListSorted(ctx, "Friends", SortByFirstName)
	if err != nil {
		t.Fatal(err)
	}
	if byFirst[0].FirstName != "Amit" || byFirst[2].FirstName != "Zara" {
		t.Errorf("sorted by first name: %v", names(byFirst))
	}

	byLast, _ := contacts.ListSorted(ctx, "Friends", SortByLastName)
	if byLast[0].LastName != "Adams" || byLast[2].LastName != "Shah" {
		t.Errorf("sorted by last name: %v", names(byLast))
	}

	// Unknown sort field falls back to first name.
	fallback, _ := contacts.ListSorted(ctx, "Friends", "bogus")
	if fallback[0].FirstName != "Amit" {
		t.Errorf("fallback sort: %v", names(fallback))
	}

	// The stored order is untouched.
	listed, _ := contacts.List(ctx, "Friends")
	if listed[0].FirstName != "Zara" {
		t.Error("ListSorted mutated stored order")
	}
}

func names(cs []domain.Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.FirstName + " " + c.LastName
	}
	return out
}

func TestContactService_Search(t *testing.T) {
	books, contacts := newServices(t)
	ctx := context.Background()

	books.Create(ctx, &CreateBookRequest{Name: "Friends"})

	boston := validContact("Amit", "Shah")
	boston.City = " boston "
	boston.State = "Massachusetts"
	london := validContact("John", "Baker")

	contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: boston})
	contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: london})

	// Case-insensitive, whitespace-trimmed equality.
	got, err := contacts.Search(ctx, "Friends", LocationFilter{City: "BOSTON"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].FirstName != "Amit" {
		t.Errorf("Search(city) = %v", names(got))
	}

	// Filters combine with AND.
	got, _ = contacts.Search(ctx, "Friends", LocationFilter{City: "Boston", State: "California"})
	if len(got) != 0 {
		t.Errorf("Search(city AND wrong state) = %v", names(got))
	}
	got, _ = contacts.Search(ctx, "Friends", LocationFilter{City: "Boston", State: "massachusetts"})
	if len(got) != 1 {
		t.Errorf("Search(city AND state) = %v", names(got))
	}

	// Empty filter returns everything.
	got, _ = contacts.Search(ctx, "Friends", LocationFilter{})
	if len(got) != 2 {
		t.Errorf("Search(empty) = %v", names(got))
	}

	if _, err := contacts.Search(ctx, "Nope", LocationFilter{}); !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("Search() missing book error = %v", err)
	}
}

func TestContactService_CountByLocation(t *testing.T) {
	books, contacts := newServices(t)
	ctx := context.Background()

	books.Create(ctx, &CreateBookRequest{Name: "Friends"})
	contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: validContact("Amit", "Shah")})

	result, err := contacts.CountByLocation(ctx, "Friends", LocationFilter{City: "London"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Count != 1 || result.City != "London" || result.State != "N/A" {
		t.Errorf("CountByLocation() = %+v", result)
	}

	result, _ = contacts.CountByLocation(ctx, "Friends", LocationFilter{})
	if result.Count != 1 || result.City != "N/A" || result.State != "N/A" {
		t.Errorf("CountByLocation(empty) = %+v", result)
	}
}

func TestContactService_Update(t *testing.T) {
	books, contacts := newServices(t)
	ctx := context.Background()

	books.Create(ctx, &CreateBookRequest{Name: "Friends"})
	contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: validContact("Amit", "Shah")})

	updated, err := contacts.Update(ctx, &UpdateContactRequest{
		Book:  "Friends",
		Key:   "Amit Shah",
		Patch: &domain.ContactPatch{City: strptr("Mumbai"), Zip: strptr("400001")},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.City != "Mumbai" || updated.Zip != "400001" {
		t.Errorf("Update() = %+v", updated)
	}
	// Absent fields retained.
	if updated.Email != "someone@example.com" {
		t.Errorf("Email = %q, want retained", updated.Email)
	}

	// The merged record is re-validated; invalid results are rejected
	// and the stored contact is unchanged.
	_, err = contacts.Update(ctx, &UpdateContactRequest{
		Book:  "Friends",
		Key:   "Amit Shah",
		Patch: &domain.ContactPatch{Zip: strptr("12")},
	})
	if !errors.Is(err, domain.ErrContactValidation) {
		t.Errorf("Update() invalid merge error = %v", err)
	}
	listed, _ := contacts.List(ctx, "Friends")
	if listed[0].Zip != "400001" {
		t.Errorf("stored zip = %q after rejected update", listed[0].Zip)
	}

	_, err = contacts.Update(ctx, &UpdateContactRequest{
		Book:  "Friends",
		Key:   "Nobody Here",
		Patch: &domain.ContactPatch{City: strptr("Oslo")},
	})
	if !errors.Is(err, domain.ErrContactNotFound) {
		t.Errorf("Update() missing key error = %v", err)
	}

	_, err = contacts.Update(ctx, &UpdateContactRequest{Book: "Friends", Key: "Amit Shah", Patch: &domain.ContactPatch{}})
	if !errors.Is(err, domain.ErrMissingArgument) {
		t.Errorf("Update() empty patch error = %v", err)
	}
}

func TestContactService_Delete(t *testing.T) {
	books, contacts := newServices(t)
	ctx := context.Background()

	books.Create(ctx, &CreateBookRequest{Name: "Friends"})
	contacts.Add(ctx, &AddContactRequest{Book: "Friends", Contact: validContact("Amit", "Shah")})

	if err := contacts.Delete(ctx, "Friends", "Amit Shah"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := contacts.Delete(ctx, "Friends", "Amit Shah"); !errors.Is(err, domain.ErrContactNotFound) {
		t.Errorf("repeat Delete() error = %v", err)
	}
	if err := contacts.Delete(ctx, "Friends", " "); !errors.Is(err, domain.ErrMissingArgument) {
		t.Errorf("Delete() blank key error = %v", err)
	}
}
