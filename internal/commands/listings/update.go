package listings

import (
	"context"
	"errors"
	"time"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const msgUpdateFailed = "Could not update listing."

var errNotSeller = auction.UserError{
	Message: "You can only edit your own listings.",
	Err:     errors.New("listing belongs to another seller"),
}

// UpdateCommand is the `listings update` command
type UpdateCommand struct {
	id   string
	form form
}

// Flags is the command flags
func (cmd *UpdateCommand) Flags(fs *pflag.FlagSet) {
	cmd.form.Flags(fs)
}

// SetArgs sets the listing id
func (cmd *UpdateCommand) SetArgs(args []string) error {
	cmd.id = args[0]
	return nil
}

// Handler is the command handler
func (cmd *UpdateCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	rec, err := clients.KeyedUser()
	if err != nil {
		return err
	}

	l, err := ownListing(ctx, clients.Auction, rec, cmd.id)
	if err != nil {
		return err
	}

	req, err := cmd.form.overlay(l, time.Now())
	if err != nil {
		return err
	}

	if _, err := clients.Auction.UpdateListing(ctx, cmd.id, req); err != nil {
		return auction.NewUserError(err, msgUpdateFailed)
	}

	ui.Print(terminal.NewTextLog("Successfully updated listing %s", cmd.id))
	return nil
}

// ownListing loads the listing and checks it belongs to the signed in user
func ownListing(ctx context.Context, client auction.Client, rec session.Record, id string) (auction.Listing, error) {
	l, err := client.Listing(ctx, id)
	if err != nil {
		return auction.Listing{}, auction.NewUserError(err, msgLoadListingFailed)
	}
	if l.SellerName() == "" || l.SellerName() != rec.Name {
		return auction.Listing{}, errNotSeller
	}
	return l, nil
}
