package login

import (
	"errors"
	"strings"

	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail    = "email"
	inputFieldPassword = "password"

	// MinPasswordLength is the shortest password the auction API accepts
	MinPasswordLength = 8
)

var (
	errInvalidEmail    = errors.New("email must be a valid email address")
	errInvalidPassword = errors.New("password must be at least 8 characters")
)

type inputs struct {
	Email    string
	Password string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email"},
			Validate: func(ans interface{}) error { return ValidateEmail(ans.(string)) },
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: func(ans interface{}) error { return ValidatePassword(ans.(string)) },
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}

	i.Email = strings.TrimSpace(i.Email)
	i.Password = strings.TrimSpace(i.Password)

	if err := ValidateEmail(i.Email); err != nil {
		return err
	}
	return ValidatePassword(i.Password)
}

// ValidateEmail checks the email looks like an email address
func ValidateEmail(email string) error {
	if !strings.Contains(strings.TrimSpace(email), "@") {
		return errInvalidEmail
	}
	return nil
}

// ValidatePassword checks the password is long enough
func ValidatePassword(password string) error {
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return errInvalidPassword
	}
	return nil
}
