package listings

import (
	"context"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

const msgDeleteFailed = "Could not delete listing."

// DeleteCommand is the `listings delete` command
type DeleteCommand struct {
	id string
}

// SetArgs sets the listing id
func (cmd *DeleteCommand) SetArgs(args []string) error {
	cmd.id = args[0]
	return nil
}

// Handler is the command handler
func (cmd *DeleteCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	rec, err := clients.KeyedUser()
	if err != nil {
		return err
	}

	l, err := ownListing(ctx, clients.Auction, rec, cmd.id)
	if err != nil {
		return err
	}

	proceed, err := ui.Confirm("Are you sure you want to delete this listing? This cannot be undone.")
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.Auction.DeleteListing(ctx, cmd.id); err != nil {
		return auction.NewUserError(err, msgDeleteFailed)
	}

	ui.Print(terminal.NewTextLog("Successfully deleted listing: %s", auction.PlainText(l.Title)))
	return nil
}
