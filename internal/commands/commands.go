package commands

import (
	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/commands/bid"
	"github.com/nookmarket/nook-cli/internal/commands/bids"
	"github.com/nookmarket/nook-cli/internal/commands/listings"
	"github.com/nookmarket/nook-cli/internal/commands/login"
	"github.com/nookmarket/nook-cli/internal/commands/logout"
	"github.com/nookmarket/nook-cli/internal/commands/profile"
	"github.com/nookmarket/nook-cli/internal/commands/register"
	"github.com/nookmarket/nook-cli/internal/commands/whoami"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in to The Nook Market with your email and password",
		Help: `Log in to The Nook Market with your email and password

	Your session is saved to your CLI profile, and an API key is created for it
	the first time it is used. Logging in as another user replaces the saved session.`,
		Args: cli.ExactArgs(),
	}
	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Description: "Create a new Nook Market account",
		Help: `Create a new Nook Market account

	Accounts are registered with a stud.noroff.no or noroff.no email address.
	Once registered, log in to start bidding.`,
		Args: cli.ExactArgs(),
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
		Help:        "logout",
		Args:        cli.ExactArgs(),
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
		Help:        "whoami",
		Args:        cli.ExactArgs(),
	}

	Profile = cli.CommandDefinition{
		Use:         "profile",
		Aliases:     []string{"profiles"},
		Description: "View and update auction profiles",
		Help:        "profile",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "view [name]",
				Aliases:     []string{"show"},
				Display:     "profile view",
				Description: "Show your profile, or the profile of the named user",
				Help:        "view",
				Command:     &profile.ViewCommand{},
				Args:        cli.MaximumArgs("name"),
			},
			{
				Use:         "update",
				Display:     "profile update",
				Description: "Update your avatar, banner or bio",
				Help:        "update",
				Command:     &profile.UpdateCommand{},
				Args:        cli.ExactArgs(),
			},
		},
	}

	Listings = cli.CommandDefinition{
		Use:         "listings",
		Aliases:     []string{"listing"},
		Description: "Browse and manage auction listings",
		Help:        "listings",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "listings list",
				Description: "List the active listings, ending soonest first",
				Help:        "list",
				Command:     &listings.ListCommand{},
				Args:        cli.ExactArgs(),
			},
			{
				Use:         "view <id>",
				Aliases:     []string{"show"},
				Display:     "listings view",
				Description: "Show a listing along with its bids",
				Help:        "view",
				Command:     &listings.ViewCommand{},
				Args:        cli.ExactArgs("id"),
			},
			{
				Use:         "create",
				Display:     "listings create",
				Description: "Put an item up for auction",
				Help: `Put an item up for auction

	A listing needs a title and an end date in the future. Media may be
	repeated to show more than one image.`,
				Command: &listings.CreateCommand{},
				Args:    cli.ExactArgs(),
			},
			{
				Use:         "update <id>",
				Display:     "listings update",
				Description: "Edit one of your listings",
				Help:        "update",
				Command:     &listings.UpdateCommand{},
				Args:        cli.ExactArgs("id"),
			},
			{
				Use:         "delete <id>",
				Aliases:     []string{"rm"},
				Display:     "listings delete",
				Description: "Delete one of your listings",
				Help:        "delete",
				Command:     &listings.DeleteCommand{},
				Args:        cli.ExactArgs("id"),
			},
			{
				Use:         "mine",
				Display:     "listings mine",
				Description: "List your own listings",
				Help:        "mine",
				Command:     &listings.MineCommand{},
				Args:        cli.ExactArgs(),
			},
		},
	}

	Bid = cli.CommandDefinition{
		Command:     &bid.Command{},
		Use:         "bid <listing-id> <amount>",
		Description: "Place a bid on a listing",
		Help: `Place a bid on a listing

	The amount must be higher than the listing's current highest bid, and is
	taken from your credits.`,
		Args: cli.ExactArgs("listing-id", "amount"),
	}

	Bids = cli.CommandDefinition{
		Use:         "bids",
		Description: "Review the bids you have placed",
		Help:        "bids",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "mine",
				Display:     "bids mine",
				Description: "List your bids, newest first",
				Help:        "mine",
				Command:     &bids.MineCommand{},
				Args:        cli.ExactArgs(),
			},
		},
	}
)
