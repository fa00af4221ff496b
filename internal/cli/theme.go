package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgerbook-go/pkg/prefs"
)

// NewThemeCommand shows or changes the stored UI theme.
func NewThemeCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.Prefs.Theme())
				return nil
			}

			var (
				theme prefs.Theme
				err   error
			)
			switch args[0] {
			case "toggle":
				theme, err = app.Prefs.ToggleTheme()
			case "dark":
				theme, err = prefs.ThemeDark, app.Prefs.SetTheme(prefs.ThemeDark)
			default:
				theme, err = prefs.ThemeLight, app.Prefs.SetTheme(prefs.ThemeLight)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}
}
