package cli

import (
	"errors"
	"fmt"
)

// DisableUsage disables the usage printing when an error occurs
type DisableUsage interface {
	DisableUsage() struct{}
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() struct{} { return struct{}{} }

func (err errDisableUsage) Unwrap() error { return err.error }

// CommandSuggester handles any suggestions to run if the current command isn't working
type CommandSuggester interface {
	SuggestedCommands() []interface{}
}

// ErrNotLoggedIn is returned by commands that need a signed in user
var ErrNotLoggedIn = errNotLoggedIn{}

type errNotLoggedIn struct{}

func (errNotLoggedIn) Error() string { return "you must be logged in to do this" }

func (errNotLoggedIn) SuggestedCommands() []interface{} {
	return []interface{}{Name + " login"}
}

// ErrMissingAPIKey is returned by commands that need an API key the session does not hold yet
var ErrMissingAPIKey = errMissingAPIKey{}

type errMissingAPIKey struct{}

func (errMissingAPIKey) Error() string {
	return "your session has no API key yet, log in again to create one"
}

func (errMissingAPIKey) SuggestedCommands() []interface{} {
	return []interface{}{Name + " login"}
}

// suggester finds the first error in the chain that suggests commands
func suggester(err error) (CommandSuggester, bool) {
	var s CommandSuggester
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}

// PositionalArgs validates the positional arguments of a command
type PositionalArgs func(args []string) error

// ExactArgs requires exactly n positional arguments, named by names
func ExactArgs(names ...string) PositionalArgs {
	return func(args []string) error {
		if len(args) != len(names) {
			return fmt.Errorf("expected %d argument(s) %v but got %d", len(names), names, len(args))
		}
		return nil
	}
}

// MaximumArgs allows at most n positional arguments, named by names
func MaximumArgs(names ...string) PositionalArgs {
	return func(args []string) error {
		if len(args) > len(names) {
			return fmt.Errorf("expected at most %d argument(s) %v but got %d", len(names), names, len(args))
		}
		return nil
	}
}
