package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, clientID string, asOf time.Time) (*domain.TrialBalanceReport, error)

	// IncomeStatement generates an income statement for an inclusive date window
	IncomeStatement(ctx context.Context, clientID string, from, to time.Time) (*domain.IncomeStatementReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, clientID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// AccountBalance computes the all-time signed balance of one account
	AccountBalance(ctx context.Context, clientID string, accountID string) (*domain.AccountBalance, error)
}
