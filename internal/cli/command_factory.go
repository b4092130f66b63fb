package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile    *user.Profile
	ui         terminal.UI
	uiConfig   terminal.UIConfig
	inReader   *os.File
	outWriter  *os.File
	errWriter  *os.File
	errLogger  *log.Logger
	newClients func(profile *user.Profile, ui terminal.UI) Clients
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() *CommandFactory {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, profileErr := user.NewDefaultProfile()
	if profileErr != nil {
		errLogger.Fatal(profileErr)
	}

	return &CommandFactory{
		profile:    profile,
		errLogger:  errLogger,
		newClients: NewClients,
	}
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	if command.Args != nil {
		cmd.Args = func(c *cobra.Command, a []string) error { return command.Args(a) }
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command == nil {
		return &cmd
	}

	if command, ok := command.Command.(CommandFlags); ok {
		fs := cmd.Flags()
		fs.SortFlags = false // ensures command flags are added unsorted
		command.Flags(fs)
	}

	cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
		factory.ensureUI()
		c.SetIn(factory.inReader)
		c.SetOut(factory.outWriter)
		c.SetErr(factory.errWriter)

		if err := factory.profile.ResolveFlags(); err != nil {
			factory.ui.Print(terminal.NewErrorLog(err))
			os.Exit(1)
		}
	}

	cmd.PreRunE = func(c *cobra.Command, a []string) error {
		if command, ok := command.Command.(CommandArgs); ok {
			if err := command.SetArgs(a); err != nil {
				return fmt.Errorf("%s setup failed: %w", display, err)
			}
		}
		if command, ok := command.Command.(CommandInputs); ok {
			if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s setup failed: %w", display, err)
			}
		}
		return nil
	}

	cmd.RunE = func(c *cobra.Command, a []string) error {
		ctx := c.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if err := factory.run(ctx, command.Command); err != nil {
			return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
		}
		return nil
	}

	return &cmd
}

// run bootstraps the session and then runs the command handler
func (factory *CommandFactory) run(ctx context.Context, command Command) error {
	clients := factory.newClients(factory.profile, factory.ui)
	if command, ok := command.(CommandRegions); ok {
		current, _ := clients.Session.CurrentUser()
		clients.Hydrator.SetRegions(command.Regions(factory.ui, current))
	}
	clients.Bootstrap(ctx)

	return command.Handler(ctx, factory.profile, factory.ui, clients)
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.uiConfig.OutputTarget != "" && factory.outWriter != nil {
		factory.outWriter.Close()
	}
}

// Run executes the command
func (factory *CommandFactory) Run(cmd *cobra.Command) {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		handleUsage(cmd, err)

		if factory.ui == nil {
			factory.errLogger.Fatal(err)
		}

		logs := []terminal.Log{terminal.NewErrorLog(err)}
		if e, ok := suggester(err); ok {
			logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, e.SuggestedCommands()...))
		}

		factory.ui.Print(logs...)
		factory.Close()
		os.Exit(1)
	}
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)
	fs.BoolVarP(&factory.uiConfig.Verbose, terminal.FlagVerbose, terminal.FlagVerboseShort, false, terminal.FlagVerboseUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.APIBaseURL, user.FlagAPIBaseURL, "", user.FlagAPIBaseURLUsage)
	if err := fs.MarkHidden(user.FlagAPIBaseURL); err != nil {
		factory.errLogger.Fatal(err)
	}
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outWriter = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter, factory.errLogger)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	var disableUsage DisableUsage
	if errors.As(err, &disableUsage) {
		return
	}
	fmt.Println(cmd.UsageString())
}
