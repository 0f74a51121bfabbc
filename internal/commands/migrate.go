package commands

import (
	"fmt"

	"github.com/SscSPs/ledger_app/internal/platform/config"
	"github.com/SscSPs/ledger_app/internal/platform/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back every schema migration",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if source == "" {
				source = cfg.MigrationsPath
			}
			return database.Migrate(logger, cfg.DatabaseURL, source, database.Direction(args[0]))
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "migration source URL (defaults to MIGRATIONS_PATH)")

	return cmd
}
