package command

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/avelys/rolodex-go/internal/cli/connection"
	"github.com/avelys/rolodex-go/internal/core/service"
)

// requestTimeout bounds every CLI request.
const requestTimeout = 30 * time.Second

// BookCommand returns the book subcommand group.
func BookCommand() *cli.Command {
	return &cli.Command{
		Name:    "book",
		Aliases: []string{"books"},
		Usage:   "Manage address books",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a new address book",
				ArgsUsage: "BOOK_NAME",
				Action:    bookCreate,
			},
			{
				Name:   "list",
				Usage:  "List address books",
				Action: bookList,
			},
		},
	}
}

func bookCreate(c *cli.Context) error {
	bookName := c.Args().First()
	if bookName == "" {
		return fmt.Errorf("book name required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Post(ctx, "/addressBooks/"+url.PathEscape(bookName), nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Message string `json:"message"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	fmt.Fprintln(stdout(c), result.Message)
	return nil
}

func bookList(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Get(ctx, "/addressBooks")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var books []service.BookSummary
	if err := connection.ParseResponse(resp, &books); err != nil {
		return err
	}

	return formatterFor(c).Format(stdout(c), books)
}
