package command

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/core/service"
	"github.com/avelys/rolodex-go/internal/server/httpserver"
	"github.com/avelys/rolodex-go/internal/storage/jsonfile"
)

// newTestServer starts a full server backed by a temp snapshot file.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := jsonfile.Open(jsonfile.Config{
		Path:    filepath.Join(t.TempDir(), "rolodex.json"),
		Matcher: domain.NewMatcher(domain.MatchFullName, domain.CaseSensitive),
	})
	if err != nil {
		t.Fatalf("jsonfile.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		BookService:    service.NewBookService(store),
		ContactService: service.NewContactService(store),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// runApp runs the CLI against the test server and captures stdout.
func runApp(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	app := App()
	var buf bytes.Buffer
	app.Writer = &buf

	fullArgs := append([]string{"rolodex-cli", "--server", srv.URL}, args...)
	err := app.Run(fullArgs)
	return buf.String(), err
}

func addTestContact(t *testing.T, srv *httptest.Server, book, first, last string) {
	t.Helper()
	_, err := runApp(t, srv, "contact", "add", "--book", book,
		"--first-name", first,
		"--last-name", last,
		"--address", "100 Main Street",
		"--city", "Columbus",
		"--state", "Ohio",
		"--zip", "43004",
		"--phone", "0123456789",
		"--email", strings.ToLower(first)+"@example.com")
	if err != nil {
		t.Fatalf("contact add failed: %v", err)
	}
}

func TestBookCreateAndList(t *testing.T) {
	srv := newTestServer(t)

	out, err := runApp(t, srv, "book", "create", "friends")
	if err != nil {
		t.Fatalf("book create error = %v", err)
	}
	if !strings.Contains(out, "friends") {
		t.Errorf("output = %q", out)
	}

	out, err = runApp(t, srv, "-o", "json", "book", "list")
	if err != nil {
		t.Fatalf("book list error = %v", err)
	}

	var books []service.BookSummary
	if err := json.Unmarshal([]byte(out), &books); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(books) != 1 || books[0].Name != "friends" {
		t.Errorf("books = %+v", books)
	}
}

func TestBookCreate_MissingName(t *testing.T) {
	srv := newTestServer(t)

	if _, err := runApp(t, srv, "book", "create"); err == nil {
		t.Error("book create without a name should fail")
	}
}

func TestBookCreate_Duplicate(t *testing.T) {
	srv := newTestServer(t)

	if _, err := runApp(t, srv, "book", "create", "friends"); err != nil {
		t.Fatal(err)
	}
	_, err := runApp(t, srv, "book", "create", "friends")
	if err == nil || !strings.Contains(err.Error(), "RX-BOOK-4090") {
		t.Errorf("duplicate create error = %v, want server error code", err)
	}
}

func TestContactAddAndList(t *testing.T) {
	srv := newTestServer(t)
	if _, err := runApp(t, srv, "book", "create", "friends"); err != nil {
		t.Fatal(err)
	}

	addTestContact(t, srv, "friends", "John", "Smith")

	out, err := runApp(t, srv, "-o", "json", "contact", "list", "--book", "friends")
	if err != nil {
		t.Fatalf("contact list error = %v", err)
	}

	var contacts []domain.Contact
	if err := json.Unmarshal([]byte(out), &contacts); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(contacts) != 1 || contacts[0].FirstName != "John" {
		t.Errorf("contacts = %+v", contacts)
	}
}

func TestContactList_Sorted(t *testing.T) {
	srv := newTestServer(t)
	if _, err := runApp(t, srv, "book", "create", "friends"); err != nil {
		t.Fatal(err)
	}
	addTestContact(t, srv, "friends", "John", "Smith")
	addTestContact(t, srv, "friends", "Alice", "Jones")

	out, err := runApp(t, srv, "-o", "json", "contact", "list", "--book", "friends", "--sort", "firstName")
	if err != nil {
		t.Fatalf("sorted list error = %v", err)
	}

	var contacts []domain.Contact
	if err := json.Unmarshal([]byte(out), &contacts); err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 2 || contacts[0].FirstName != "Alice" {
		t.Errorf("contacts = %+v", contacts)
	}
}

func TestContactSearchAndCount(t *testing.T) {
	srv := newTestServer(t)
	if _, err := runApp(t, srv, "book", "create", "friends"); err != nil {
		t.Fatal(err)
	}
	addTestContact(t, srv, "friends", "John", "Smith")

	out, err := runApp(t, srv, "-o", "json", "contact", "search", "--book", "friends", "--city", "Columbus")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	var contacts []domain.Contact
	if err := json.Unmarshal([]byte(out), &contacts); err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 {
		t.Errorf("search results = %+v", contacts)
	}

	out, err = runApp(t, srv, "-o", "json", "contact", "count", "--book", "friends", "--city", "Columbus")
	if err != nil {
		t.Fatalf("count error = %v", err)
	}
	var result service.CountResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatal(err)
	}
	if result.Count != 1 || result.City != "Columbus" || result.State != "N/A" {
		t.Errorf("count result = %+v", result)
	}
}

func TestContactUpdate(t *testing.T) {
	srv := newTestServer(t)
	if _, err := runApp(t, srv, "book", "create", "friends"); err != nil {
		t.Fatal(err)
	}
	addTestContact(t, srv, "friends", "John", "Smith")

	out, err := runApp(t, srv, "contact", "update", "--book", "friends", "--city", "Dayton", "John Smith")
	if err != nil {
		t.Fatalf("update error = %v", err)
	}
	if !strings.Contains(out, "Dayton") {
		t.Errorf("output = %q", out)
	}
}

func TestContactUpdate_NoFields(t *testing.T) {
	srv := newTestServer(t)

	_, err := runApp(t, srv, "contact", "update", "--book", "friends", "John Smith")
	if err == nil || !strings.Contains(err.Error(), "no fields") {
		t.Errorf("error = %v, want no-fields failure", err)
	}
}

func TestContactDelete(t *testing.T) {
	srv := newTestServer(t)
	if _, err := runApp(t, srv, "book", "create", "friends"); err != nil {
		t.Fatal(err)
	}
	addTestContact(t, srv, "friends", "John", "Smith")

	if _, err := runApp(t, srv, "contact", "delete", "--book", "friends", "John Smith"); err != nil {
		t.Fatalf("delete error = %v", err)
	}

	_, err := runApp(t, srv, "contact", "delete", "--book", "friends", "John Smith")
	if err == nil || !strings.Contains(err.Error(), "RX-CONT-4040") {
		t.Errorf("second delete error = %v, want not-found code", err)
	}
}

func TestApp_Metadata(t *testing.T) {
	app := App()
	if app.Name != "rolodex-cli" {
		t.Errorf("Name = %q", app.Name)
	}
	if len(app.Commands) != 2 {
		t.Errorf("expected book and contact command groups, got %d", len(app.Commands))
	}
}
