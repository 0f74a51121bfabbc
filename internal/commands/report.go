package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/spf13/cobra"
)

// reportOptions are shared by every report subcommand.
type reportOptions struct {
	clientID string
	currency string
	asJSON   bool
}

func newReportCommand() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a financial report for one company",
	}

	cmd.PersistentFlags().StringVar(&opts.clientID, "client", "", "client (company) ID (required)")
	_ = cmd.MarkPersistentFlagRequired("client")
	cmd.PersistentFlags().StringVar(&opts.currency, "currency", "", "ISO currency for amounts (defaults to REPORT_CURRENCY)")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print the API response body instead of a table")

	cmd.AddCommand(
		newTrialBalanceCommand(opts),
		newIncomeStatementCommand(opts),
		newBalanceSheetCommand(opts),
	)

	return cmd
}

// withApp opens the application for a report and resolves the output currency.
func (o *reportOptions) withApp(ctx context.Context, fn func(a *app, currency string) error) error {
	a, err := openApp(ctx, newLogger())
	if err != nil {
		return err
	}
	defer a.Close()

	currency := o.currency
	if currency == "" {
		currency = a.cfg.ReportCurrency
	}
	return fn(a, currency)
}

func newTrialBalanceCommand(opts *reportOptions) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Debit and credit balances of every active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag("as-of", asOf, time.Now)
			if err != nil {
				return err
			}
			return opts.withApp(cmd.Context(), func(a *app, currency string) error {
				report, err := a.services.Reporting.TrialBalance(cmd.Context(), opts.clientID, date)
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(cmd.OutOrStdout(), dto.ToTrialBalanceResponse(report))
				}
				return writeTrialBalance(cmd.OutOrStdout(), report, currency)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (defaults to today)")

	return cmd
}

func newIncomeStatementCommand(opts *reportOptions) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Revenue, expense and net income for a date window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateFlag("start", start, nil)
			if err != nil {
				return err
			}
			to, err := parseDateFlag("end", end, nil)
			if err != nil {
				return err
			}
			return opts.withApp(cmd.Context(), func(a *app, currency string) error {
				report, err := a.services.Reporting.IncomeStatement(cmd.Context(), opts.clientID, from, to)
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(cmd.OutOrStdout(), dto.ToIncomeStatementResponse(report))
				}
				return writeIncomeStatement(cmd.OutOrStdout(), report, currency)
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "last day YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBalanceSheetCommand(opts *reportOptions) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Assets, liabilities and equity as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag("as-of", asOf, time.Now)
			if err != nil {
				return err
			}
			return opts.withApp(cmd.Context(), func(a *app, currency string) error {
				report, err := a.services.Reporting.BalanceSheet(cmd.Context(), opts.clientID, date)
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(cmd.OutOrStdout(), dto.ToBalanceSheetResponse(report))
				}
				return writeBalanceSheet(cmd.OutOrStdout(), report, currency)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (defaults to today)")

	return cmd
}

// parseDateFlag parses a YYYY-MM-DD flag. An empty value falls back to the UTC
// day of now, or is an error when now is nil.
func parseDateFlag(name, value string, now func() time.Time) (time.Time, error) {
	if value == "" {
		if now == nil {
			return time.Time{}, fmt.Errorf("--%s is required", name)
		}
		today := now().UTC()
		return time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD: %w", name, err)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
