package command

import (
	"context"
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/avelys/rolodex-go/internal/cli/connection"
	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/core/service"
)

// ContactCommand returns the contact subcommand group.
func ContactCommand() *cli.Command {
	bookFlag := &cli.StringFlag{
		Name:     "book",
		Aliases:  []string{"b"},
		Usage:    "Address book name",
		Required: true,
	}

	return &cli.Command{
		Name:    "contact",
		Aliases: []string{"contacts"},
		Usage:   "Manage contacts",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a contact to an address book",
				Flags: []cli.Flag{
					bookFlag,
					&cli.StringFlag{Name: "first-name", Usage: "First name", Required: true},
					&cli.StringFlag{Name: "last-name", Usage: "Last name", Required: true},
					&cli.StringFlag{Name: "address", Usage: "Street address", Required: true},
					&cli.StringFlag{Name: "city", Usage: "City", Required: true},
					&cli.StringFlag{Name: "state", Usage: "State", Required: true},
					&cli.StringFlag{Name: "zip", Usage: "Zip code", Required: true},
					&cli.StringFlag{Name: "phone", Usage: "Phone number", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
				},
				Action: contactAdd,
			},
			{
				Name:  "list",
				Usage: "List contacts in an address book",
				Flags: []cli.Flag{
					bookFlag,
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort by field: firstName, lastName, zip",
					},
				},
				Action: contactList,
			},
			{
				Name:  "search",
				Usage: "Search contacts by city and/or state",
				Flags: []cli.Flag{
					bookFlag,
					&cli.StringFlag{Name: "city", Usage: "City filter"},
					&cli.StringFlag{Name: "state", Usage: "State filter"},
				},
				Action: contactSearch,
			},
			{
				Name:  "count",
				Usage: "Count contacts matching a location",
				Flags: []cli.Flag{
					bookFlag,
					&cli.StringFlag{Name: "city", Usage: "City filter"},
					&cli.StringFlag{Name: "state", Usage: "State filter"},
				},
				Action: contactCount,
			},
			{
				Name:      "update",
				Usage:     "Update fields of an existing contact",
				ArgsUsage: "CONTACT_NAME",
				Flags: []cli.Flag{
					bookFlag,
					&cli.StringFlag{Name: "first-name", Usage: "New first name"},
					&cli.StringFlag{Name: "last-name", Usage: "New last name"},
					&cli.StringFlag{Name: "address", Usage: "New street address"},
					&cli.StringFlag{Name: "city", Usage: "New city"},
					&cli.StringFlag{Name: "state", Usage: "New state"},
					&cli.StringFlag{Name: "zip", Usage: "New zip code"},
					&cli.StringFlag{Name: "phone", Usage: "New phone number"},
					&cli.StringFlag{Name: "email", Usage: "New email address"},
				},
				Action: contactUpdate,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a contact",
				ArgsUsage: "CONTACT_NAME",
				Flags:     []cli.Flag{bookFlag},
				Action:    contactDelete,
			},
		},
	}
}

// contactsPath builds the contacts collection path for a book.
func contactsPath(book string) string {
	return "/addressBooks/" + url.PathEscape(book) + "/contacts"
}

// locationQuery builds the ?city=&state= query string from flags.
func locationQuery(c *cli.Context) string {
	q := url.Values{}
	if city := c.String("city"); city != "" {
		q.Set("city", city)
	}
	if state := c.String("state"); state != "" {
		q.Set("state", state)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func contactAdd(c *cli.Context) error {
	contact := domain.Contact{
		FirstName:   c.String("first-name"),
		LastName:    c.String("last-name"),
		Address:     c.String("address"),
		City:        c.String("city"),
		State:       c.String("state"),
		Zip:         c.String("zip"),
		PhoneNumber: c.String("phone"),
		Email:       c.String("email"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Post(ctx, contactsPath(c.String("book")), contact)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Message string         `json:"message"`
		Contact domain.Contact `json:"contact"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	fmt.Fprintln(stdout(c), result.Message)
	return formatterFor(c).Format(stdout(c), result.Contact)
}

func contactList(c *cli.Context) error {
	path := contactsPath(c.String("book"))
	if sort := c.String("sort"); sort != "" {
		path += "/sorted?by=" + url.QueryEscape(sort)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Get(ctx, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var contacts []domain.Contact
	if err := connection.ParseResponse(resp, &contacts); err != nil {
		return err
	}

	return formatterFor(c).Format(stdout(c), contacts)
}

func contactSearch(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Get(ctx, contactsPath(c.String("book"))+"/search"+locationQuery(c))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var contacts []domain.Contact
	if err := connection.ParseResponse(resp, &contacts); err != nil {
		return err
	}

	return formatterFor(c).Format(stdout(c), contacts)
}

func contactCount(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Get(ctx, contactsPath(c.String("book"))+"/countByLocation"+locationQuery(c))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result service.CountResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return formatterFor(c).Format(stdout(c), &result)
}

func contactUpdate(c *cli.Context) error {
	contactName := c.Args().First()
	if contactName == "" {
		return fmt.Errorf("contact name required")
	}

	patch := map[string]string{}
	for flag, field := range map[string]string{
		"first-name": "firstName",
		"last-name":  "lastName",
		"address":    "address",
		"city":       "city",
		"state":      "state",
		"zip":        "zip",
		"phone":      "phoneNumber",
		"email":      "email",
	} {
		if c.IsSet(flag) {
			patch[field] = c.String(flag)
		}
	}
	if len(patch) == 0 {
		return fmt.Errorf("no fields to update")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Put(ctx, contactsPath(c.String("book"))+"/"+url.PathEscape(contactName), patch)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Message string         `json:"message"`
		Contact domain.Contact `json:"contact"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	fmt.Fprintln(stdout(c), result.Message)
	return formatterFor(c).Format(stdout(c), result.Contact)
}

func contactDelete(c *cli.Context) error {
	contactName := c.Args().First()
	if contactName == "" {
		return fmt.Errorf("contact name required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := Client(c).Delete(ctx, contactsPath(c.String("book"))+"/"+url.PathEscape(contactName))
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
