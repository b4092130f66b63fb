package login

import (
	"context"
	"strings"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email address you registered with"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify your password"

	fallbackMessage = "Login failed."
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if existing, ok := clients.Session.CurrentUser(); ok && existing.AccessToken != "" && !strings.EqualFold(existing.Email, cmd.inputs.Email) {
		proceed, err := ui.Confirm(
			"This action will terminate the existing session for user: %s, would you like to proceed?",
			existing.Name,
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	s := ui.Spinner("Logging in...", terminal.SpinnerOptions{})
	s.Start()
	sess, err := clients.Auction.Login(ctx, cmd.inputs.Email, cmd.inputs.Password)
	s.Stop()
	if err != nil {
		return auction.NewUserError(err, fallbackMessage)
	}

	if err := clients.Session.Save(&sess); err != nil {
		return err
	}

	rec, _ := clients.Keys.EnsureAPIKeyOnLoad(ctx)
	if synced, result := clients.Profiles.Sync(ctx); result == session.SyncApplied {
		rec = synced
	}
	clients.Hydrator.Hydrate()

	ui.Print(terminal.NewTextLog("Successfully logged in as %s with %d credits", rec.Name, rec.Credits))
	return nil
}
