package cmd

import (
	"fmt"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to browse and bid on The Nook Market auctions",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory := cli.NewCommandFactory()
	defer factory.Close()

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Login))
	cmd.AddCommand(factory.Build(commands.Logout))
	cmd.AddCommand(factory.Build(commands.Register))
	cmd.AddCommand(factory.Build(commands.Profile))
	cmd.AddCommand(factory.Build(commands.Listings))
	cmd.AddCommand(factory.Build(commands.Bid))
	cmd.AddCommand(factory.Build(commands.Bids))

	factory.Run(cmd)
}
