package profile

import (
	"context"
	"strings"
	"time"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/commands/bids"
	"github.com/nookmarket/nook-cli/internal/commands/listings"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

const (
	headerName     = "Name"
	headerCredits  = "Credits"
	headerListings = "Listings"
	headerWins     = "Wins"

	recentBids = 5

	msgLoadFailed = "Could not load profile."
)

// ViewCommand is the `profile view` command
type ViewCommand struct {
	name string
}

// SetArgs sets the name of the profile to view
func (cmd *ViewCommand) SetArgs(args []string) error {
	if len(args) > 0 {
		cmd.name = strings.TrimSpace(args[0])
	}
	return nil
}

// Regions renders the cached identity, unless another user's profile is viewed
func (cmd *ViewCommand) Regions(ui terminal.UI, current session.Record) hydrate.Regions {
	if !cmd.isOwn(current) {
		return hydrate.Regions{Navbar: ui}
	}
	return hydrate.Regions{Navbar: ui, ProfileHeader: ui, Banner: ui}
}

// Handler is the command handler
func (cmd *ViewCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	current, _ := clients.Session.CurrentUser()
	if cmd.isOwn(current) {
		return cmd.viewOwn(ctx, ui, clients)
	}
	return cmd.viewOther(ctx, ui, clients)
}

func (cmd *ViewCommand) isOwn(current session.Record) bool {
	return cmd.name == "" || (current.Name != "" && strings.EqualFold(cmd.name, current.Name))
}

func (cmd *ViewCommand) viewOwn(ctx context.Context, ui terminal.UI, clients cli.Clients) error {
	rec, err := clients.SignedInUser()
	if err != nil {
		return err
	}

	// renders the refreshed header and banner when anything changed
	if synced, result := clients.Profiles.Sync(ctx); result == session.SyncApplied {
		rec = synced
	}

	if bio := auction.PlainText(rec.Bio); bio != "" {
		ui.Print(terminal.NewTextLog("Bio: %s", bio))
	}

	mine, err := clients.Auction.ProfileListings(ctx, rec.Name)
	if err != nil {
		return auction.NewUserError(err, msgLoadFailed)
	}
	now := time.Now()
	ui.Print(listings.NewTableLog("Your listings", mine, now))

	placed, err := clients.Auction.ProfileBids(ctx, rec.Name)
	if err != nil {
		ui.Print(terminal.NewWarningLog("Could not load your bids: %s", auction.ErrorMessage(err, "")))
		return nil
	}
	ui.Print(bids.NewTableLog("Your recent bids", bids.NewestFirst(placed, recentBids), now))
	return nil
}

func (cmd *ViewCommand) viewOther(ctx context.Context, ui terminal.UI, clients cli.Clients) error {
	p, err := clients.Auction.Profile(ctx, cmd.name)
	if err != nil {
		return auction.NewUserError(err, msgLoadFailed)
	}

	wins := p.Count.Wins
	if len(p.Wins) > wins {
		wins = len(p.Wins)
	}

	logs := []terminal.Log{
		terminal.NewTableLog(
			"Profile",
			[]string{headerName, headerCredits, headerListings, headerWins},
			map[string]interface{}{
				headerName:     p.Name,
				headerCredits:  p.Credits,
				headerListings: p.Count.Listings,
				headerWins:     wins,
			},
		),
	}
	if bio := auction.PlainText(p.Bio); bio != "" {
		logs = append(logs, terminal.NewTextLog("Bio: %s", bio))
	}

	theirs := p.Listings
	if len(theirs) == 0 {
		if theirs, err = clients.Auction.ProfileListings(ctx, p.Name); err != nil {
			return auction.NewUserError(err, msgLoadFailed)
		}
	}
	logs = append(logs, listings.NewTableLog("Listings by "+p.Name, theirs, time.Now()))

	ui.Print(logs...)
	return nil
}
