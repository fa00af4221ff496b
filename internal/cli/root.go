// Package cli assembles the ledgerbook command-line interface on top of the
// client packages: session lifecycle, resource listings, and the dashboard
// aggregate.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	JSON bool
}

// NewRootCommand creates the ledgerbook root command with every subcommand
// attached.
func NewRootCommand() *cobra.Command {
	app := &App{}
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ledgerbook",
		Short: "Personal finance client for the Ledger Book API",
		Long: `ledgerbook talks to a Ledger Book server: sign in, browse accounts,
categories, contacts, transactions and budgets, and show the dashboard
overview. The session survives restarts; set LEDGERBOOK_API_BASE_URL to
point at your server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Bootstrap()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "print raw JSON instead of tables")

	cmd.AddCommand(NewLoginCommand(app, opts))
	cmd.AddCommand(NewRegisterCommand(app, opts))
	cmd.AddCommand(NewLogoutCommand(app, opts))
	cmd.AddCommand(NewWhoamiCommand(app, opts))
	cmd.AddCommand(NewAccountsCommand(app, opts))
	cmd.AddCommand(NewCategoriesCommand(app, opts))
	cmd.AddCommand(NewContactsCommand(app, opts))
	cmd.AddCommand(NewTransactionsCommand(app, opts))
	cmd.AddCommand(NewBudgetsCommand(app, opts))
	cmd.AddCommand(NewDashboardCommand(app, opts))
	cmd.AddCommand(NewThemeCommand(app, opts))

	return cmd
}
