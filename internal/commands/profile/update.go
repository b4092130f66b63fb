package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
	"github.com/nookmarket/nook-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagAvatar      = "avatar"
	flagAvatarUsage = "Specify an image URL to use as your avatar"

	flagBanner      = "banner"
	flagBannerUsage = "Specify an image URL to use as your banner"

	flagBio      = "bio"
	flagBioUsage = "Specify a short text about yourself, pass an empty value to clear it"

	msgUpdateFailed = "Could not update profile."
)

var errNothingToUpdate = auction.UserError{
	Message: "Nothing to update yet.",
	Err:     errors.New("no profile fields to update"),
}

// UpdateCommand is the `profile update` command
type UpdateCommand struct {
	inputs updateInputs
}

type updateInputs struct {
	Avatar string
	Banner string
	Bio    flags.OptionalString
}

// Flags is the command flags
func (cmd *UpdateCommand) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Avatar, flagAvatar, "", flagAvatarUsage)
	fs.StringVar(&cmd.inputs.Banner, flagBanner, "", flagBannerUsage)
	fs.Var(&cmd.inputs.Bio, flagBio, flagBioUsage)
}

// Regions renders the updated identity
func (cmd *UpdateCommand) Regions(ui terminal.UI, _ session.Record) hydrate.Regions {
	return hydrate.Regions{Navbar: ui, ProfileHeader: ui, Banner: ui}
}

// Handler is the command handler
func (cmd *UpdateCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	rec, err := clients.KeyedUser()
	if err != nil {
		return err
	}

	req := cmd.inputs.request(rec.Name)
	if req.IsEmpty() {
		return errNothingToUpdate
	}

	fields, err := clients.Auction.UpdateProfile(ctx, rec.Name, req)
	if err != nil {
		return auction.NewUserError(err, msgUpdateFailed)
	}

	if _, result := clients.Profiles.MergeProfile(fields); result != session.SyncApplied {
		ui.Print(terminal.NewWarningLog("Your profile was updated but could not be refreshed locally"))
	}

	ui.Print(terminal.NewTextLog("Successfully updated profile"))
	return nil
}

func (i updateInputs) request(name string) auction.ProfileUpdate {
	var req auction.ProfileUpdate
	if avatar := strings.TrimSpace(i.Avatar); avatar != "" {
		req.Avatar = &session.Media{URL: avatar, Alt: "Avatar of " + name}
	}
	if banner := strings.TrimSpace(i.Banner); banner != "" {
		req.Banner = &session.Media{URL: banner, Alt: "Banner of " + name}
	}
	if i.Bio.IsSet {
		bio := strings.TrimSpace(i.Bio.Value)
		req.Bio = &bio
	}
	return req
}
