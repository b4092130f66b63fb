package bid

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/commands/listings"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

const msgBidFailed = "Could not place bid."

var (
	errInvalidAmount = errors.New("amount must be a whole number of credits")
	errBidTooLow     = errors.New("bid does not exceed the highest bid")
)

// ErrLoginToBid is returned when a bid is attempted without a session
var ErrLoginToBid = errLoginToBid{}

type errLoginToBid struct{}

func (errLoginToBid) Error() string { return "Log in or create an account to place a bid." }

func (errLoginToBid) SuggestedCommands() []interface{} {
	return []interface{}{cli.Name + " login", cli.Name + " register"}
}

// Command is the `bid` command
type Command struct {
	listingID string
	amount    int
}

// SetArgs sets the listing id and bid amount
func (cmd *Command) SetArgs(args []string) error {
	amount, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return errInvalidAmount
	}
	cmd.listingID = args[0]
	cmd.amount = amount
	return nil
}

// Regions renders the navbar, which shows the credits left after the bid
func (cmd *Command) Regions(ui terminal.UI, _ session.Record) hydrate.Regions {
	return hydrate.Regions{Navbar: ui}
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if _, err := clients.SignedInUser(); err != nil {
		return ErrLoginToBid
	}

	l, err := clients.Auction.Listing(ctx, cmd.listingID)
	if err != nil {
		return auction.NewUserError(err, msgBidFailed)
	}

	if highest := l.HighestBid(); cmd.amount <= highest {
		return auction.UserError{
			Message: fmt.Sprintf("Bid must be higher than current highest bid (%s).", listings.Credits(highest)),
			Err:     errBidTooLow,
		}
	}

	s := ui.Spinner("Placing bid...", terminal.SpinnerOptions{})
	s.Start()
	err = clients.Auction.PlaceBid(ctx, cmd.listingID, cmd.amount)
	s.Stop()
	if err != nil {
		return auction.NewUserError(err, msgBidFailed)
	}

	rec, result := clients.Profiles.Sync(ctx)
	if result != session.SyncApplied {
		ui.Print(terminal.NewTextLog("Successfully placed a bid of %s on %s", listings.Credits(cmd.amount), listings.Title(l)))
		return nil
	}

	ui.Print(terminal.NewTextLog(
		"Successfully placed a bid of %s on %s, you have %s left",
		listings.Credits(cmd.amount),
		listings.Title(l),
		listings.Credits(rec.Credits),
	))
	return nil
}
