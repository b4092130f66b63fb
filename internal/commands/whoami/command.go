package whoami

import (
	"context"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

// Command is the `whoami` command
type Command struct{}

// Regions renders every part of the cached identity
func (cmd *Command) Regions(ui terminal.UI, _ session.Record) hydrate.Regions {
	return hydrate.Regions{Navbar: ui, ProfileHeader: ui, Banner: ui}
}

// Handler is the command handler.
// The identity itself is rendered while the session is bootstrapped,
// so all that is left is to report the session state.
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	ui.Print(terminal.NewTextLog("Session state: %s", clients.Session.State()))
	return nil
}
