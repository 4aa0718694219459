// Package cmd implements the CLI views of the FinTrade terminal client.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/chauhan07divyansh/fintrade-frontend/api"
)

// App is the application state shared by every view: created once in main,
// injected into each subcommand, and mutated only through its setters.
// There is deliberately no package-level state here.
type App struct {
	theme    string // glamour style: dark, light or none
	apiURL   string
	currency string
	out      io.Writer

	client *api.Client
}

// NewApp returns the application state with its defaults.
func NewApp() *App {
	return &App{theme: "dark", currency: "INR", out: os.Stdout}
}

// SetTheme selects the rendering theme.
func (a *App) SetTheme(theme string) error {
	switch theme {
	case "dark", "light", "none":
		a.theme = theme
		return nil
	default:
		return fmt.Errorf("invalid theme %q (expected dark, light or none)", theme)
	}
}

// SetOutput redirects the rendered views, stdout by default.
func (a *App) SetOutput(w io.Writer) { a.out = w }

// SetAPIURL overrides the service base URL ahead of the FINTRADE_API_URL
// environment variable.
func (a *App) SetAPIURL(u string) { a.apiURL = u; a.client = nil }

// SetCurrency selects the display currency for prices and amounts.
func (a *App) SetCurrency(c string) { a.currency = c }

// SetFlags binds the global flags onto the application state.
func (a *App) SetFlags(f *flag.FlagSet) {
	f.Func("theme", "rendering theme: dark, light or none (default dark)", a.SetTheme)
	f.Func("api-url", "base URL of the FinTrade service (default $"+api.EnvBaseURL+", then the hosted service)", func(s string) error {
		a.SetAPIURL(s)
		return nil
	})
	f.Func("currency", "display currency for prices and amounts (default INR)", func(s string) error {
		a.SetCurrency(s)
		return nil
	})
}

// Client returns the API client for the configured base URL.
func (a *App) Client() *api.Client {
	if a.client == nil {
		a.client = api.New(a.apiURL)
	}
	return a.client
}

// Register registers every view on the commander.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&stocksCmd{app: app}, "views")
	c.Register(&analyzeCmd{app: app}, "views")
	c.Register(&planCmd{app: app}, "views")
	c.Register(&compareCmd{app: app}, "views")
	c.Register(&disclaimerCmd{app: app}, "views")

	c.Register(&assistCmd{app: app}, "assistant")
	c.Register(&topicCmd{app: app}, "documentation")
}

// printMarkdown renders markdown to the app writer through the selected
// theme. A rendering failure falls back to the raw markdown rather than
// losing the report.
func (a *App) printMarkdown(md string) {
	if a.theme == "none" {
		fmt.Fprintln(a.out, md)
		return
	}
	out, err := glamour.Render(md, a.theme)
	if err != nil {
		log.Printf("warning: cannot style output: %v", err)
		fmt.Fprintln(a.out, md)
		return
	}
	fmt.Fprint(a.out, out)
}

// progress surfaces fetch transitions on stderr so slow requests are
// visible while the view waits.
func progress[T any](name string, f *api.Fetch[T]) {
	f.Subscribe(func(r api.Result[T]) {
		if r.Loading {
			log.Printf("fetching %s...", name)
		}
	})
}
