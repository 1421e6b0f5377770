package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}

		id := d.session.Current()
		if id == nil {
			pterm.Info.Println("Not signed in. Run \"sqlscribe login\" to get started.")
			return nil
		}

		if id.Name != "" {
			pterm.Printfln("%s <%s>", id.Name, id.Email)
		} else {
			pterm.Println(id.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
