package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/core/service"
)

// Table holds tabular data for rendering.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table using aligned columns.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// TableFormatter formats known data shapes as ASCII tables.
type TableFormatter struct{}

// Format renders contacts, book summaries and count results as tables.
// Other shapes fall back to a plain line dump.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case []domain.Contact:
		return ContactsTable(v).Render(w)
	case domain.Contact:
		return ContactsTable([]domain.Contact{v}).Render(w)
	case []service.BookSummary:
		return BooksTable(v).Render(w)
	case *service.CountResult:
		return CountTable(v).Render(w)
	case *Table:
		return v.Render(w)
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

// ContactsTable builds the standard contact listing table.
func ContactsTable(contacts []domain.Contact) *Table {
	t := &Table{Headers: []string{"FIRST NAME", "LAST NAME", "ADDRESS", "CITY", "STATE", "ZIP", "PHONE", "EMAIL"}}
	for _, c := range contacts {
		t.AddRow(c.FirstName, c.LastName, c.Address, c.City, c.State, c.Zip, c.PhoneNumber, c.Email)
	}
	return t
}

// BooksTable builds the address-book listing table.
func BooksTable(books []service.BookSummary) *Table {
	t := &Table{Headers: []string{"NAME", "CONTACTS"}}
	for _, b := range books {
		t.AddRow(b.Name, strconv.Itoa(b.ContactCount))
	}
	return t
}

// CountTable builds the count query result table.
func CountTable(result *service.CountResult) *Table {
	t := &Table{Headers: []string{"COUNT", "CITY", "STATE"}}
	t.AddRow(strconv.Itoa(result.Count), result.City, result.State)
	return t
}
