package commands

import (
	"fmt"

	"github.com/SscSPs/ledger_app/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a company with its chart of accounts and opening transactions",
		Long: "Loads a YAML seed file (or the built-in demo company) and posts it through\n" +
			"the same validation as the API.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				f   *seed.File
				err error
			)
			if file == "" {
				f, err = seed.Demo()
			} else {
				f, err = seed.Load(file)
			}
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), newLogger())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := seed.Apply(cmd.Context(), a.services, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "client %s: %d accounts, %d transactions (login: %s)\n",
				res.ClientID, res.Accounts, res.Transactions, f.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "seed YAML file (defaults to the demo company)")

	return cmd
}
