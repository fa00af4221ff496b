package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgerbook-go/pkg/finance"
)

// NewDashboardCommand shows the combined overview the web dashboard renders:
// account position, debt position, and period statistics.
func NewDashboardCommand(app *App, opts *RootOptions) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the financial overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			overview, err := finance.FetchOverview(cmd.Context(),
				app.Accounts, app.Contacts, app.Transactions, period)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), overview)
			}

			currency := userCurrency(app)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Net worth: %s (assets %s, liabilities %s)\n",
				finance.FormatAmount(currency, overview.Accounts.NetWorth),
				finance.FormatAmount(currency, overview.Accounts.TotalAssets),
				finance.FormatAmount(currency, overview.Accounts.TotalLiabilities),
			)
			fmt.Fprintf(out, "Debts: owed to you %s, you owe %s\n",
				finance.FormatAmount(currency, overview.Contacts.TotalOwedToYou),
				finance.FormatAmount(currency, overview.Contacts.TotalYouOwe),
			)
			fmt.Fprintf(out, "This %s: income %s, expense %s, savings %s\n",
				overview.Statistics.Period,
				finance.FormatAmount(currency, overview.Statistics.TotalIncome),
				finance.FormatAmount(currency, overview.Statistics.TotalExpense),
				finance.FormatAmount(currency, overview.Statistics.NetSavings),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "reporting period (week|month|year)")

	return cmd
}
