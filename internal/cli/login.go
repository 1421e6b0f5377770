package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// loginCmd signs in without launching the full UI, so scripts and quick
// checks can establish a session first.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}

		if d.session.SignedIn() {
			pterm.Info.Printfln("Already signed in as %s", d.session.Email())
			return nil
		}

		email, err := pterm.DefaultInteractiveTextInput.Show("Email")
		if err != nil {
			return err
		}
		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}
		if strings.TrimSpace(email) == "" || password == "" {
			pterm.Error.Println("Email and password are required")
			return nil
		}

		spinner, _ := pterm.DefaultSpinner.Start("Signing in...")
		if err := d.session.SignIn(cmd.Context(), email, password); err != nil {
			spinner.Fail(err.Error())
			return nil
		}
		spinner.Success("Signed in as " + d.session.Email())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
