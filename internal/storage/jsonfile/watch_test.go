// Package jsonfile persists the full address-book state in one JSON file.
package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avelys/rolodex-go/internal/core/domain"
)

func TestStore_WatchFile_ReloadsExternalEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rolodex.json")
	ctx := context.Background()

	s, err := Open(Config{Path: path, Matcher: domain.NewMatcher(domain.MatchFullName, domain.CaseSensitive)})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.WatchFile(); err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}

	// Replace the file the way an external editor would: write a
	// sibling and rename over the original.
	edited := []byte(`{"addressBooks":{"External":[]}}` + "\n")
	tmp := filepath.Join(dir, "edit.tmp")
	if err := os.WriteFile(tmp, edited, 0640); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for {
		if _, err := s.Contacts(ctx, "External"); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("store did not reload external edit")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := s.Stats().Reloads; got != 1 {
		t.Errorf("Reloads = %d, want 1", got)
	}
}

func TestStore_WatchFile_IgnoresSelfWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rolodex.json")
	ctx := context.Background()

	s, err := Open(Config{Path: path, Matcher: domain.NewMatcher(domain.MatchFullName, domain.CaseSensitive)})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.WatchFile(); err != nil {
		t.Fatal(err)
	}

	// Back-to-back mutations: the watcher handles the event for one
	// persist while the next persist is already replacing the file.
	s.CreateBook(ctx, "Friends")
	for _, c := range []domain.Contact{
		testContact("Amit", "Shah"),
		testContact("Bela", "Toth"),
		testContact("Carl", "Weber"),
		testContact("Dana", "Irwin"),
	} {
		if _, err := s.AddContact(ctx, "Friends", c); err != nil {
			t.Fatal(err)
		}
	}

	// Give the watcher time to see (and skip) our own writes.
	time.Sleep(200 * time.Millisecond)

	if got := s.Stats().Reloads; got != 0 {
		t.Errorf("Reloads = %d, want 0 for self-writes", got)
	}
	contacts, err := s.Contacts(ctx, "Friends")
	if err != nil || len(contacts) != 4 {
		t.Errorf("state disturbed by watcher: %v, %v", contacts, err)
	}
}

func TestStore_Reload_RejectsInvalidJSON(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	s.CreateBook(ctx, "Friends")

	if err := os.WriteFile(s.Path(), []byte("{not json"), 0640); err != nil {
		t.Fatal(err)
	}
	if _, err := s.reload(); err == nil {
		t.Fatal("reload() accepted invalid JSON")
	}
	// In-memory state is untouched.
	if _, err := s.Contacts(ctx, "Friends"); err != nil {
		t.Errorf("state lost after failed reload: %v", err)
	}
}
