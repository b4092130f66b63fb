package register

import (
	"context"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagName      = "name"
	flagNameShort = "n"
	flagNameUsage = "Specify the user name to register, using letters, numbers and underscores"

	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify your stud.noroff.no or noroff.no email address"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify a password of at least 8 characters"

	flagAvatar      = "avatar"
	flagAvatarUsage = "Specify an image URL to use as your avatar"

	fallbackMessage = "Registration failed."
)

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Name, flagName, flagNameShort, "", flagNameUsage)
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.Avatar, flagAvatar, "", flagAvatarUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	req := auction.RegisterRequest{
		Name:     cmd.inputs.Name,
		Email:    cmd.inputs.Email,
		Password: cmd.inputs.Password,
	}
	if cmd.inputs.Avatar != "" {
		req.Avatar = &session.Media{URL: cmd.inputs.Avatar, Alt: "Avatar for " + cmd.inputs.Name}
	}

	s := ui.Spinner("Creating your account...", terminal.SpinnerOptions{})
	s.Start()
	registered, err := clients.Auction.Register(ctx, req)
	s.Stop()
	if err != nil {
		return auction.NewUserError(err, fallbackMessage)
	}

	name := registered.Name
	if name == "" {
		name = req.Name
	}

	ui.Print(
		terminal.NewTextLog("Successfully registered as %s", name),
		terminal.NewFollowupLog("To sign in with your new account, run", cli.Name+" login --email "+req.Email),
	)
	return nil
}
