// Package menu provides the interactive movie database menu.
package menu

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/internal/console"
	"github.com/agentstation/cinemap/internal/driver"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/logging"
)

// AppContext defines the interface that the menu command needs from the app.
type AppContext interface {
	Catalog() (*catalogs.Catalog, error)
	DataFile() string
	ClearScreen() bool
	Logger() *zerolog.Logger
}

// NewCommand creates the menu command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Short:   "Run the interactive movie database menu",
		Long: `Menu starts the interactive session: search, add, delete and list
favourite movies. Choosing Exit, or ending input, saves the data file.

Running cinemap without a command does the same.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app)
		},
	}
}

// Run starts an interactive session on the command's input and output.
func Run(cmd *cobra.Command, app AppContext) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithClearScreen(app.ClearScreen()))
	d, err := driver.New(cat, con, driver.WithDataFile(app.DataFile()))
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithOperation(ctx, "menu")
	return d.Run(ctx)
}
