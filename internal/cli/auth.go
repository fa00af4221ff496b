package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgerbook-go/pkg/finance"
)

// NewLoginCommand signs in with email and password and persists the session.
func NewLoginCommand(app *App, opts *RootOptions) *cobra.Command {
	var form finance.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return renderError(err)
			}
			if err := app.Manager.Login(cmd.Context(), form); err != nil {
				return renderError(err)
			}
			user := app.Manager.Session().User
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewRegisterCommand creates an account and signs in.
func NewRegisterCommand(app *App, opts *RootOptions) *cobra.Command {
	var form finance.RegisterForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return renderError(err)
			}
			if err := app.Manager.Register(cmd.Context(), form); err != nil {
				return renderError(err)
			}
			user := app.Manager.Session().User
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. You are signed in.\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	cmd.Flags().StringVar(&form.PasswordConfirmation, "password-confirmation", "", "repeat the password")
	cmd.Flags().StringVar(&form.Currency, "currency", "", "preferred currency code, e.g. EUR")
	cmd.Flags().StringVar(&form.Timezone, "timezone", "", "IANA timezone, e.g. Europe/Berlin")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("password-confirmation")

	return cmd
}

// NewLogoutCommand revokes the current token (or all tokens with --all) and
// clears local state. Local state is cleared even when the server is
// unreachable.
func NewLogoutCommand(app *App, opts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				app.Manager.LogoutAll(cmd.Context())
			} else {
				app.Manager.Logout(cmd.Context())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "revoke every session, not just this one")

	return cmd
}

// NewWhoamiCommand refreshes and prints the current user snapshot.
func NewWhoamiCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(); err != nil {
				return err
			}
			if err := app.Manager.FetchUser(cmd.Context()); err != nil {
				return renderError(err)
			}
			user := app.Manager.Session().User

			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), user)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(out, "Currency: %s  Timezone: %s\n", user.Currency, user.Timezone)
			fmt.Fprintf(out, "Net worth: %s (assets %s, liabilities %s)\n",
				finance.FormatAmount(user.Currency, user.FinancialSummary.NetWorth),
				finance.FormatAmount(user.Currency, user.FinancialSummary.TotalAssets),
				finance.FormatAmount(user.Currency, user.FinancialSummary.TotalLiabilities),
			)
			return nil
		},
	}
}
