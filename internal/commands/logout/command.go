package logout

import (
	"context"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

// Command is the `logout` command
type Command struct{}

// Regions renders the signed-out navbar once the session is gone
func (cmd *Command) Regions(ui terminal.UI, _ session.Record) hydrate.Regions {
	return hydrate.Regions{Navbar: ui}
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := clients.Session.Clear(); err != nil {
		return err
	}
	clients.Hydrator.Hydrate()

	ui.Print(terminal.NewTextLog("Successfully logged out"))
	return nil
}
