package listings

import (
	"context"
	"time"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagTag      = "tag"
	flagTagUsage = "Only show listings with this tag"

	flagQuery      = "query"
	flagQueryShort = "q"
	flagQueryUsage = "Search listing titles, descriptions and tags"

	flagLimit      = "limit"
	flagLimitUsage = "Specify how many listings to show per page"

	flagPage      = "page"
	flagPageUsage = "Specify the page of listings to show"

	msgLoadFailed = "Could not load listings."
)

// ListCommand is the `listings list` command
type ListCommand struct {
	inputs listInputs
}

type listInputs struct {
	Tag   string
	Query string
	Limit int
	Page  int
}

// Flags is the command flags
func (cmd *ListCommand) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Tag, flagTag, "", flagTagUsage)
	fs.StringVarP(&cmd.inputs.Query, flagQuery, flagQueryShort, "", flagQueryUsage)
	fs.IntVar(&cmd.inputs.Limit, flagLimit, auction.DefaultListingsLimit, flagLimitUsage)
	fs.IntVar(&cmd.inputs.Page, flagPage, 1, flagPageUsage)
}

// Handler is the command handler
func (cmd *ListCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	var found []auction.Listing
	var err error

	if cmd.inputs.Query != "" {
		found, err = clients.Auction.SearchListings(ctx, cmd.inputs.Query)
		found = auction.FilterListings(found, cmd.inputs.Query)
	} else {
		found, err = clients.Auction.Listings(ctx, auction.ListingFilter{
			Tag:   cmd.inputs.Tag,
			Limit: cmd.inputs.Limit,
			Page:  cmd.inputs.Page,
		})
	}
	if err != nil {
		return auction.NewUserError(err, msgLoadFailed)
	}

	now := time.Now()
	active := make([]auction.Listing, 0, len(found))
	for _, l := range found {
		if l.IsActive(now) {
			active = append(active, l)
		}
	}
	auction.SortListings(active, auction.ListingSortEndingSoon)

	ui.Print(NewTableLog("Active listings", active, now))
	return nil
}
