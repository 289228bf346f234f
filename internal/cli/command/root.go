package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/avelys/rolodex-go/internal/cli/connection"
	"github.com/avelys/rolodex-go/internal/cli/output"
	"github.com/avelys/rolodex-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "rolodex-cli",
		Usage:   "Rolodex address book management tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			BookCommand(),
			ContactCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "rolodex-server address (e.g., 127.0.0.1:5190)",
			EnvVars: []string{"ROLODEX_SERVER"},
			Value:   "127.0.0.1:5190",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
	}
}

// Client builds an HTTP client for the configured server.
func Client(c *cli.Context) *connection.HTTPClient {
	return connection.NewHTTPClient(c.String("server"))
}

// formatterFor returns the output formatter selected by the global
// --output flag.
func formatterFor(c *cli.Context) output.Formatter {
	return output.NewFormatter(output.Format(c.String("output")))
}

// stdout returns the writer command output goes to. cli.App.Writer is
// honored so tests can capture output.
func stdout(c *cli.Context) io.Writer {
	if c.App != nil && c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
