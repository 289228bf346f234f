// Package jsonfile persists the full address-book state in one JSON file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/telemetry/logger"
)

// snapshot is the on-disk layout of the backing file.
type snapshot struct {
	AddressBooks map[string][]domain.Contact `json:"addressBooks"`
}

// Config configures the store.
type Config struct {
	// Path is the location of the backing JSON file. Required.
	Path string

	// Matcher decides how contacts are keyed for duplicate detection
	// and lookups.
	Matcher domain.Matcher

	// Logger for store events. Defaults to the process logger.
	Logger logger.Logger
}

// Store is a file-backed address-book repository.
type Store struct {
	path    string
	matcher domain.Matcher
	logger  logger.Logger

	mu    sync.RWMutex
	books map[string][]domain.Contact

	// lastBytes holds the serialization last written by this process,
	// used by the watcher to tell self-writes from external edits.
	lastBytes []byte

	persists uint64
	reloads  uint64

	watch *watcher
}

// Stats describes the current store state for metrics collection.
type Stats struct {
	Books        int
	Contacts     int
	SnapshotSize int64
	Persists     uint64
	Reloads      uint64
}

// Open loads the snapshot at cfg.Path into memory, creating an empty
// backing file on first run.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("jsonfile: path is required")
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	s := &Store{
		path:    cfg.Path,
		matcher: cfg.Matcher,
		logger:  log,
		books:   make(map[string][]domain.Contact),
	}

	data, err := os.ReadFile(cfg.Path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0750); err != nil {
			return nil, fmt.Errorf("jsonfile: create data directory: %w", err)
		}
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		log.Info("created empty snapshot", "path", cfg.Path)
	case err != nil:
		return nil, fmt.Errorf("jsonfile: read snapshot: %w", err)
	default:
		books, err := decodeSnapshot(data)
		if err != nil {
			return nil, err
		}
		s.books = books
		s.lastBytes = data
		log.Info("loaded snapshot",
			"path", cfg.Path,
			"books", len(books))
	}

	return s, nil
}

func decodeSnapshot(data []byte) (map[string][]domain.Contact, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("jsonfile: unmarshal snapshot: %w", err)
	}
	if snap.AddressBooks == nil {
		snap.AddressBooks = make(map[string][]domain.Contact)
	}
	return snap.AddressBooks, nil
}

// persistLocked serializes the full in-memory state and atomically
// replaces the backing file. Callers must hold the write lock.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(snapshot{AddressBooks: s.books}, "", "  ")
	if err != nil {
		return domain.ErrStorageUnavailable.WithCause(err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return domain.ErrStorageUnavailable.WithCause(err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return domain.ErrStorageUnavailable.WithCause(err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return domain.ErrStorageUnavailable.WithCause(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return domain.ErrStorageUnavailable.WithCause(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return domain.ErrStorageUnavailable.WithCause(err)
	}

	s.lastBytes = data
	s.persists++
	return nil
}

// CreateBook inserts an empty address book under name and persists.
func (s *Store) CreateBook(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[name]; ok {
		return domain.ErrBookExists.WithDetails(name)
	}
	s.books[name] = []domain.Contact{}
	if err := s.persistLocked(); err != nil {
		delete(s.books, name)
		return err
	}
	return nil
}

// Books returns all address books sorted by name, with their contacts
// in insertion order.
func (s *Store) Books(_ context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.books))
	for name := range s.books {
		names = append(names, name)
	}
	sort.Strings(names)

	books := make([]domain.Book, 0, len(names))
	for _, name := range names {
		books = append(books, domain.Book{
			Name:     name,
			Contacts: cloneContacts(s.books[name]),
		})
	}
	return books, nil
}

// Contacts returns the full ordered contact sequence of a book.
func (s *Store) Contacts(_ context.Context, book string) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts, ok := s.books[book]
	if !ok {
		return nil, domain.ErrBookNotFound.WithDetails(book)
	}
	return cloneContacts(contacts), nil
}

// AddContact appends a contact to a book, preserving insertion order.
// A contact whose name key is already present is rejected.
func (s *Store) AddContact(_ context.Context, book string, c domain.Contact) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, ok := s.books[book]
	if !ok {
		return domain.Contact{}, domain.ErrBookNotFound.WithDetails(book)
	}
	for _, existing := range contacts {
		if s.matcher.SameName(existing, c) {
			return domain.Contact{}, domain.ErrContactExists.WithDetails(c.FirstName + " " + c.LastName)
		}
	}

	s.books[book] = append(contacts, c)
	if err := s.persistLocked(); err != nil {
		s.books[book] = contacts
		return domain.Contact{}, err
	}
	return c, nil
}

// UpdateContact applies fn to the first contact matching key and
// persists the result. fn runs under the write lock, so the
// read-modify-write sequence is atomic with respect to other requests.
func (s *Store) UpdateContact(_ context.Context, book, key string, fn func(domain.Contact) (domain.Contact, error)) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, ok := s.books[book]
	if !ok {
		return domain.Contact{}, domain.ErrBookNotFound.WithDetails(book)
	}

	for i, existing := range contacts {
		if !s.matcher.MatchesKey(existing, key) {
			continue
		}
		updated, err := fn(existing)
		if err != nil {
			return domain.Contact{}, err
		}
		contacts[i] = updated
		if err := s.persistLocked(); err != nil {
			contacts[i] = existing
			return domain.Contact{}, err
		}
		return updated, nil
	}
	return domain.Contact{}, domain.ErrContactNotFound.WithDetails(key)
}

// DeleteContact removes the first contact matching key and persists.
func (s *Store) DeleteContact(_ context.Context, book, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, ok := s.books[book]
	if !ok {
		return domain.ErrBookNotFound.WithDetails(book)
	}

	for i, existing := range contacts {
		if !s.matcher.MatchesKey(existing, key) {
			continue
		}
		s.books[book] = append(contacts[:i:i], contacts[i+1:]...)
		if err := s.persistLocked(); err != nil {
			s.books[book] = contacts
			return err
		}
		return nil
	}
	return domain.ErrContactNotFound.WithDetails(key)
}

// Stats reports the current store state.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := 0
	for _, cs := range s.books {
		contacts += len(cs)
	}
	return Stats{
		Books:        len(s.books),
		Contacts:     contacts,
		SnapshotSize: int64(len(s.lastBytes)),
		Persists:     s.persists,
		Reloads:      s.reloads,
	}
}

// Close stops the watcher if one is running.
func (s *Store) Close() error {
	if s.watch != nil {
		return s.watch.stop()
	}
	return nil
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

func cloneContacts(contacts []domain.Contact) []domain.Contact {
	out := make([]domain.Contact, len(contacts))
	copy(out, contacts)
	return out
}

// reload re-reads the backing file and replaces the in-memory state
// when the content differs from the last self-written serialization.
// The read happens under the write lock: a concurrent persist cannot
// advance lastBytes between the read and the compare, so a burst of
// the store's own writes is never mistaken for an external edit.
// Returns true when state changed.
func (s *Store) reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		// The file may be mid-replace; the rename event will follow.
		return false, nil
	}
	if bytes.Equal(data, s.lastBytes) {
		return false, nil
	}
	books, err := decodeSnapshot(data)
	if err != nil {
		return false, err
	}
	s.books = books
	s.lastBytes = data
	s.reloads++
	return true, nil
}
