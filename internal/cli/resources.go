package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgerbook-go/pkg/finance"
)

// NewAccountsCommand lists accounts and their aggregate position.
func NewAccountsCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Browse accounts",
	}

	var filter finance.AccountFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			accounts, err := app.Accounts.List(cmd.Context(), filter)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), accounts)
			}

			currency := userCurrency(app)
			rows := [][]string{{"ID", "NAME", "TYPE", "SUBTYPE", "BALANCE"}}
			for _, a := range accounts {
				rows = append(rows, []string{
					strconv.FormatInt(a.ID, 10), a.Name, a.Type, a.Subtype,
					finance.FormatAmount(currency, a.Balance),
				})
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
	list.Flags().StringVar(&filter.Type, "type", "", "filter by type (asset|liability)")
	list.Flags().StringVar(&filter.Subtype, "subtype", "", "filter by subtype")
	list.Flags().BoolVar(&filter.ActiveOnly, "active", false, "only active accounts")

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show the aggregate account position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			s, err := app.Accounts.Summary(cmd.Context())
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), s)
			}

			currency := userCurrency(app)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Assets:      %s\n", finance.FormatAmount(currency, s.TotalAssets))
			fmt.Fprintf(out, "Liabilities: %s\n", finance.FormatAmount(currency, s.TotalLiabilities))
			fmt.Fprintf(out, "Net worth:   %s\n", finance.FormatAmount(currency, s.NetWorth))
			fmt.Fprintf(out, "Accounts:    %d (%d active)\n", s.AccountsCount, s.ActiveAccountsCount)
			return nil
		},
	}

	cmd.AddCommand(list, summary)
	return cmd
}

// NewCategoriesCommand lists income and expense categories.
func NewCategoriesCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse categories",
	}

	var filter finance.CategoryFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			categories, err := app.Categories.List(cmd.Context(), filter)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), categories)
			}

			rows := [][]string{{"ID", "NAME", "TYPE", "CHILDREN"}}
			for _, c := range categories {
				rows = append(rows, []string{
					strconv.FormatInt(c.ID, 10), c.Name, c.Type,
					strconv.Itoa(len(c.Children)),
				})
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
	list.Flags().StringVar(&filter.Type, "type", "", "filter by type (income|expense)")
	list.Flags().BoolVar(&filter.ParentOnly, "parents", false, "only top-level categories")
	list.Flags().BoolVar(&filter.ActiveOnly, "active", false, "only active categories")

	cmd.AddCommand(list)
	return cmd
}

// NewContactsCommand lists contacts and the aggregate debt position.
func NewContactsCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Browse lending and borrowing contacts",
	}

	var filter finance.ContactFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			contacts, err := app.Contacts.List(cmd.Context(), filter)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), contacts)
			}

			currency := userCurrency(app)
			rows := [][]string{{"ID", "NAME", "BALANCE", "STATUS"}}
			for _, c := range contacts {
				rows = append(rows, []string{
					strconv.FormatInt(c.ID, 10), c.Name,
					finance.FormatAmount(currency, c.Balance), c.BalanceStatus,
				})
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
	list.Flags().StringVar(&filter.Status, "status", "", "filter by balance status (owes_you|you_owe|settled)")
	list.Flags().StringVar(&filter.Search, "search", "", "search by name")
	list.Flags().BoolVar(&filter.ActiveOnly, "active", false, "only active contacts")

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show the aggregate debt position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			s, err := app.Contacts.Summary(cmd.Context())
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), s)
			}

			currency := userCurrency(app)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Owed to you: %s\n", finance.FormatAmount(currency, s.TotalOwedToYou))
			fmt.Fprintf(out, "You owe:     %s\n", finance.FormatAmount(currency, s.TotalYouOwe))
			fmt.Fprintf(out, "Net:         %s\n", finance.FormatAmount(currency, s.NetPosition))
			fmt.Fprintf(out, "Contacts:    %d (%d settled)\n", s.ContactsCount, s.SettledCount)
			return nil
		},
	}

	cmd.AddCommand(list, summary)
	return cmd
}

// NewTransactionsCommand lists transactions and period statistics.
func NewTransactionsCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Browse transactions",
	}

	var filter finance.TransactionFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			transactions, err := app.Transactions.List(cmd.Context(), filter)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), transactions)
			}

			currency := userCurrency(app)
			rows := [][]string{{"ID", "DATE", "TYPE", "AMOUNT", "ACCOUNT", "TITLE"}}
			for _, tx := range transactions {
				rows = append(rows, []string{
					strconv.FormatInt(tx.ID, 10), tx.TransactionDate, tx.Type,
					finance.FormatAmount(currency, tx.Amount), tx.Account.Name, tx.Title,
				})
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
	list.Flags().StringVar(&filter.Type, "type", "", "filter by transaction type")
	list.Flags().Int64Var(&filter.AccountID, "account", 0, "filter by account id")
	list.Flags().Int64Var(&filter.CategoryID, "category", 0, "filter by category id")
	list.Flags().Int64Var(&filter.ContactID, "contact", 0, "filter by contact id")
	list.Flags().StringVar(&filter.From, "from", "", "start date (YYYY-MM-DD)")
	list.Flags().StringVar(&filter.To, "to", "", "end date (YYYY-MM-DD)")
	list.Flags().IntVar(&filter.Page, "page", 0, "result page")

	var period string
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show income, expense and savings for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			s, err := app.Transactions.Statistics(cmd.Context(), period)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), s)
			}

			currency := userCurrency(app)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Period:    %s\n", s.Period)
			fmt.Fprintf(out, "Income:    %s\n", finance.FormatAmount(currency, s.TotalIncome))
			fmt.Fprintf(out, "Expense:   %s\n", finance.FormatAmount(currency, s.TotalExpense))
			fmt.Fprintf(out, "Savings:   %s\n", finance.FormatAmount(currency, s.NetSavings))
			fmt.Fprintf(out, "Transfers: %s\n", finance.FormatAmount(currency, s.TotalTransfers))
			return nil
		},
	}
	stats.Flags().StringVar(&period, "period", "", "reporting period (week|month|year)")

	var spendingPeriod string
	spending := &cobra.Command{
		Use:   "spending",
		Short: "Show spending grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			rows, err := app.Transactions.SpendingByCategory(cmd.Context(), spendingPeriod)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			currency := userCurrency(app)
			out := [][]string{{"CATEGORY", "TOTAL"}}
			for _, r := range rows {
				out = append(out, []string{r.CategoryName, finance.FormatAmount(currency, r.Total)})
			}
			return table(cmd.OutOrStdout(), out)
		},
	}
	spending.Flags().StringVar(&spendingPeriod, "period", "", "reporting period (week|month|year)")

	cmd.AddCommand(list, stats, spending)
	return cmd
}

// NewBudgetsCommand lists budgets with their usage.
func NewBudgetsCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Browse budgets",
	}

	var filter finance.BudgetFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			budgets, err := app.Budgets.List(cmd.Context(), filter)
			if err != nil {
				return renderError(err)
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), budgets)
			}

			currency := userCurrency(app)
			rows := [][]string{{"ID", "CATEGORY", "PERIOD", "AMOUNT", "USED"}}
			for _, b := range budgets {
				used := "-"
				if b.PercentageUsed != nil {
					used = fmt.Sprintf("%.0f%%", *b.PercentageUsed)
				}
				rows = append(rows, []string{
					strconv.FormatInt(b.ID, 10), b.Category.Name, b.Period,
					finance.FormatAmount(currency, b.Amount), used,
				})
			}
			return table(cmd.OutOrStdout(), rows)
		},
	}
	list.Flags().BoolVar(&filter.ActiveOnly, "active", false, "only active budgets")
	list.Flags().BoolVar(&filter.CurrentOnly, "current", false, "only budgets covering today")

	cmd.AddCommand(list)
	return cmd
}

// userCurrency picks the display currency from the session snapshot.
func userCurrency(app *App) string {
	if user := app.Manager.Session().User; user != nil {
		return user.Currency
	}
	return ""
}
