// Package commands wires the ledgerd command line.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/core/services"
	"github.com/SscSPs/ledger_app/internal/platform/config"
	"github.com/SscSPs/ledger_app/internal/platform/database"
	"github.com/SscSPs/ledger_app/internal/repositories/database/pgsql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "ledgerd",
		Short: "Multi-tenant double-entry ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile == "" {
				return nil
			}
			// Values already in the environment win, as with the default .env.
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("loading %s: %w", envFile, err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading configuration")

	rootCmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newReportCommand(),
	)

	return rootCmd
}

// newLogger builds the process logger and installs it as the slog default.
func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}

// app holds what every database-backed command needs.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// openApp loads configuration, connects to the database and assembles the services.
func openApp(ctx context.Context, logger *slog.Logger) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("initializing database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(pool)
	return &app{
		cfg:      cfg,
		logger:   logger,
		pool:     pool,
		services: services.NewServiceContainer(cfg, repos),
	}, nil
}
