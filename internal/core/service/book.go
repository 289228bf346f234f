// Package service provides the domain services for Rolodex.
package service

import (
	"context"
	"strings"

	"github.com/avelys/rolodex-go/internal/core/domain"
)

// Repository defines the storage interface for address-book operations.
//
// Implementations serialize mutations internally; the read-modify-write
// sequence behind UpdateContact is atomic with respect to concurrent
// calls.
type Repository interface {
	// CreateBook inserts an empty address book under name.
	CreateBook(ctx context.Context, name string) error

	// Books returns all address books sorted by name.
	Books(ctx context.Context) ([]domain.Book, error)

	// Contacts returns the ordered contact sequence of a book.
	Contacts(ctx context.Context, book string) ([]domain.Contact, error)

	// AddContact appends a contact, rejecting duplicate name keys.
	AddContact(ctx context.Context, book string, c domain.Contact) (domain.Contact, error)

	// UpdateContact applies fn to the first contact matching key under
	// the store's mutation lock.
	UpdateContact(ctx context.Context, book, key string, fn func(domain.Contact) (domain.Contact, error)) (domain.Contact, error)

	// DeleteContact removes the first contact matching key.
	DeleteContact(ctx context.Context, book, key string) error
}

// BookService manages address-book lifecycle.
type BookService struct {
	repo Repository
}

// NewBookService creates a new BookService.
func NewBookService(repo Repository) *BookService {
	return &BookService{repo: repo}
}

// CreateBookRequest contains parameters for address-book creation.
type CreateBookRequest struct {
	Name string
}

// Create creates a new, empty address book.
func (s *BookService) Create(ctx context.Context, req *CreateBookRequest) error {
	name := strings.TrimSpace(req.Name)
	if err := domain.ValidateBookName(name); err != nil {
		return err
	}
	return s.repo.CreateBook(ctx, name)
}

// BookSummary describes one address book in listing responses.
type BookSummary struct {
	Name         string `json:"name"`
	ContactCount int    `json:"contactCount"`
}

// List returns all address books sorted by name.
func (s *BookService) List(ctx context.Context) ([]BookSummary, error) {
	books, err := s.repo.Books(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, BookSummary{
			Name:         b.Name,
			ContactCount: len(b.Contacts),
		})
	}
	return summaries, nil
}
