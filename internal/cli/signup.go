package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	Long:  `Registers a new account with the service. Signing up does not sign you in; run "sqlscribe login" once your email is verified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
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

		spinner, _ := pterm.DefaultSpinner.Start("Creating account...")
		if err := d.session.SignUp(cmd.Context(), email, password); err != nil {
			spinner.Fail(err.Error())
			return nil
		}
		spinner.Success("Account created. Check your inbox, then sign in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
}
