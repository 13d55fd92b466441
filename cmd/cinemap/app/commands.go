package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/cmd/cinemap/cmd/add"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/export"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/favourites"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/list"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/menu"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/remove"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/search"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(menu.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(favourites.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("cinemap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
