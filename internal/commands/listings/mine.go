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
	flagSort      = "sort"
	flagSortShort = "s"
)

var flagSortUsage = `Specify the listing order, available options: ["ending-soon", "newest", "highest-bid"]`

// MineCommand is the `listings mine` command
type MineCommand struct {
	inputs mineInputs
}

type mineInputs struct {
	Sort  auction.ListingSort
	Query string
}

// Flags is the command flags
func (cmd *MineCommand) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Sort = auction.ListingSortEndingSoon
	fs.VarP(&cmd.inputs.Sort, flagSort, flagSortShort, flagSortUsage)
	fs.StringVarP(&cmd.inputs.Query, flagQuery, flagQueryShort, "", flagQueryUsage)
}

// Handler is the command handler
func (cmd *MineCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	rec, err := clients.SignedInUser()
	if err != nil {
		return err
	}

	found, err := clients.Auction.ProfileListings(ctx, rec.Name)
	if err != nil {
		return auction.NewUserError(err, msgLoadFailed)
	}

	mine := auction.FilterListings(found, cmd.inputs.Query)
	auction.SortListings(mine, cmd.inputs.Sort)

	ui.Print(NewTableLog("Your listings", mine, time.Now()))
	return nil
}
