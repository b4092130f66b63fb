package register

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/commands/login"
	"github.com/nookmarket/nook-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldName     = "name"
	inputFieldEmail    = "email"
	inputFieldPassword = "password"
)

// set of email domains accounts may be registered with
var emailDomains = []string{"@stud.noroff.no", "@noroff.no"}

var (
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	errInvalidName  = errors.New("name may only contain letters, numbers and underscores")
	errInvalidEmail = errors.New("email must be a stud.noroff.no or noroff.no address")
)

type inputs struct {
	Name     string
	Email    string
	Password string
	Avatar   string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Name == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldName,
			Prompt:   &survey.Input{Message: "Name"},
			Validate: func(ans interface{}) error { return ValidateName(ans.(string)) },
		})
	}

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
			Validate: func(ans interface{}) error { return login.ValidatePassword(ans.(string)) },
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}

	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Password = strings.TrimSpace(i.Password)
	i.Avatar = strings.TrimSpace(i.Avatar)

	if err := ValidateName(i.Name); err != nil {
		return err
	}
	if err := ValidateEmail(i.Email); err != nil {
		return err
	}
	return login.ValidatePassword(i.Password)
}

// ValidateName checks the name only holds letters, numbers and underscores
func ValidateName(name string) error {
	if !namePattern.MatchString(strings.TrimSpace(name)) {
		return errInvalidName
	}
	return nil
}

// ValidateEmail checks the email belongs to one of the accepted domains
func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := login.ValidateEmail(email); err != nil {
		return err
	}
	for _, domain := range emailDomains {
		if strings.HasSuffix(email, domain) {
			return nil
		}
	}
	return errInvalidEmail
}
