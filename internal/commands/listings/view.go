package listings

import (
	"context"
	"strings"
	"time"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

const msgLoadListingFailed = "Could not load listing."

// ViewCommand is the `listings view` command
type ViewCommand struct {
	id string
}

// SetArgs sets the listing id
func (cmd *ViewCommand) SetArgs(args []string) error {
	cmd.id = args[0]
	return nil
}

// Handler is the command handler
func (cmd *ViewCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	l, err := clients.Auction.Listing(ctx, cmd.id)
	if err != nil {
		return auction.NewUserError(err, msgLoadListingFailed)
	}

	ui.Print(detailLogs(l, time.Now())...)
	return nil
}

func detailLogs(l auction.Listing, now time.Time) []terminal.Log {
	image := auction.PrimaryImage(l)

	seller := l.SellerName()
	if seller == "" {
		seller = "Unknown seller"
	}

	logs := []terminal.Log{
		terminal.NewTextLog("%s", auction.PlainText(l.Title)),
	}
	if description := auction.PlainText(l.Description); description != "" {
		logs = append(logs, terminal.NewTextLog("%s", description))
	}
	if len(l.Tags) > 0 {
		logs = append(logs, terminal.NewTextLog("Tags: %s", strings.Join(l.Tags, ", ")))
	}

	logs = append(logs,
		terminal.NewTextLog("Seller: %s", seller),
		terminal.NewTextLog("Image: %s (%s)", image.URL, image.Alt),
		terminal.NewTextLog("Ends: %s (%s)", l.EndsAt.Local().Format(timeFormat), l.StatusLabel(now)),
		terminal.NewTextLog("Highest bid: %s", Credits(l.HighestBid())),
		NewBidsTableLog("Bids", l.BidsNewestFirst()),
	)
	return logs
}
