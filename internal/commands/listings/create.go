package listings

import (
	"context"
	"time"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/terminal"
	"github.com/nookmarket/nook-cli/internal/utils/flags"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	inputFieldTitle  = "title"
	inputFieldEndsAt = "endsAt"

	msgCreateFailed = "Could not create listing."
)

// CreateCommand is the `listings create` command
type CreateCommand struct {
	inputs createInputs
}

type createInputs struct {
	form
}

// Flags is the command flags
func (cmd *CreateCommand) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CreateCommand) Inputs() cli.InputResolver {
	return &cmd.inputs
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var answers struct {
		Title  string
		EndsAt string
	}

	var questions []*survey.Question

	if i.Title.Value == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldTitle,
			Prompt:   &survey.Input{Message: "Title"},
			Validate: survey.Required,
		})
	}

	if i.EndsAt.Time.IsZero() {
		questions = append(questions, &survey.Question{
			Name:   inputFieldEndsAt,
			Prompt: &survey.Input{Message: "Ends at", Help: flagEndsAtUsage},
			Validate: func(ans interface{}) error {
				_, err := flags.ParseDate(ans.(string))
				return err
			},
		})
	}

	if len(questions) == 0 {
		return nil
	}

	if err := ui.Ask(&answers, questions...); err != nil {
		return err
	}

	if answers.Title != "" {
		i.Title = flags.OptionalString{Value: answers.Title, IsSet: true}
	}
	if answers.EndsAt != "" {
		return i.EndsAt.Set(answers.EndsAt)
	}
	return nil
}

// Handler is the command handler
func (cmd *CreateCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if _, err := clients.KeyedUser(); err != nil {
		return err
	}

	req, err := cmd.inputs.request(time.Now())
	if err != nil {
		return err
	}

	created, err := clients.Auction.CreateListing(ctx, req)
	if err != nil {
		return auction.NewUserError(err, msgCreateFailed)
	}

	ui.Print(terminal.NewTextLog("Successfully created listing %s", created.ID))
	return nil
}
