package bids

import (
	"context"
	"sort"
	"time"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/commands/listings"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

const (
	headerListing = "Listing"
	headerAmount  = "Amount"
	headerPlaced  = "Placed"
	headerStatus  = "Status"

	timeFormat = "2006-01-02 15:04"

	msgLoadFailed = "Could not load your bids."
)

// MineCommand is the `bids mine` command
type MineCommand struct{}

// Handler is the command handler
func (cmd *MineCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	rec, err := clients.SignedInUser()
	if err != nil {
		return err
	}

	placed, err := clients.Auction.ProfileBids(ctx, rec.Name)
	if err != nil {
		return auction.NewUserError(err, msgLoadFailed)
	}

	ui.Print(NewTableLog("Your bids", NewestFirst(placed, auction.MaxProfileBids), time.Now()))
	return nil
}

// NewestFirst orders the bids from the most recent, keeping at most max of them
func NewestFirst(placed []auction.Bid, max int) []auction.Bid {
	sorted := make([]auction.Bid, len(placed))
	copy(sorted, placed)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Created.After(sorted[j].Created) })
	if len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted
}

// NewTableLog creates a table log of the bids the user placed
func NewTableLog(message string, placed []auction.Bid, now time.Time) terminal.Log {
	if len(placed) == 0 {
		return terminal.NewTextLog("%s: you have not placed any bids yet", message)
	}

	rows := make([]map[string]interface{}, 0, len(placed))
	for _, bid := range placed {
		title, status := "Unknown listing", ""
		if bid.Listing != nil {
			title = listings.Title(*bid.Listing)
			status = bid.Listing.StatusLabel(now)
		}
		rows = append(rows, map[string]interface{}{
			headerListing: title,
			headerAmount:  listings.Credits(bid.Amount),
			headerPlaced:  bid.Created.Local().Format(timeFormat),
			headerStatus:  status,
		})
	}
	return terminal.NewTableLog(message, []string{headerListing, headerAmount, headerPlaced, headerStatus}, rows...)
}
