package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

var (
	trialBalanceTypes    = domain.AccountTypes
	incomeStatementTypes = []domain.AccountType{domain.Revenue, domain.Expense}
	// Revenue and expense feed current earnings on the balance sheet.
	balanceSheetTypes = domain.AccountTypes
)

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, clientID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	postings, err := s.reportingRepo.ListActiveAccountPostings(ctx, clientID, trialBalanceTypes, portsrepo.PostingWindow{To: &asOf})
	if err != nil {
		s.LogError(ctx, err, "Failed to load postings for trial balance", slog.String("client_id", clientID))
		return nil, err
	}

	report, err := accounting.BuildTrialBalance(asOf, postings)
	if err != nil {
		s.LogError(ctx, err, "Failed to build trial balance", slog.String("client_id", clientID))
		return nil, err
	}
	if !report.Balanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("client_id", clientID),
			slog.String("debits", report.TotalDebits.StringFixed(2)),
			slog.String("credits", report.TotalCredits.StringFixed(2)))
	}
	return &report, nil
}

// IncomeStatement generates an income statement for an inclusive date window
func (s *reportingService) IncomeStatement(ctx context.Context, clientID string, from, to time.Time) (*domain.IncomeStatementReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
	}

	postings, err := s.reportingRepo.ListActiveAccountPostings(ctx, clientID, incomeStatementTypes, portsrepo.PostingWindow{From: &from, To: &to})
	if err != nil {
		s.LogError(ctx, err, "Failed to load postings for income statement", slog.String("client_id", clientID))
		return nil, err
	}

	report, err := accounting.BuildIncomeStatement(from, to, postings)
	if err != nil {
		s.LogError(ctx, err, "Failed to build income statement", slog.String("client_id", clientID))
		return nil, err
	}
	return &report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, clientID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	postings, err := s.reportingRepo.ListActiveAccountPostings(ctx, clientID, balanceSheetTypes, portsrepo.PostingWindow{To: &asOf})
	if err != nil {
		s.LogError(ctx, err, "Failed to load postings for balance sheet", slog.String("client_id", clientID))
		return nil, err
	}

	report, err := accounting.BuildBalanceSheet(asOf, postings)
	if err != nil {
		s.LogError(ctx, err, "Failed to build balance sheet", slog.String("client_id", clientID))
		return nil, err
	}
	if !report.Balanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("client_id", clientID),
			slog.String("assets", report.TotalAssets.StringFixed(2)),
			slog.String("liabilities_and_equity", report.TotalLiabilitiesAndEquity.StringFixed(2)))
	}
	return &report, nil
}

// AccountBalance computes the all-time signed balance of one account
func (s *reportingService) AccountBalance(ctx context.Context, clientID string, accountID string) (*domain.AccountBalance, error) {
	ap, err := s.reportingRepo.FindAccountPostings(ctx, clientID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load postings for account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	balance, err := accounting.EvaluateBalance(ap.Account.AccountType, ap.Postings)
	if err != nil {
		s.LogError(ctx, err, "Failed to evaluate account balance", slog.String("account_id", accountID))
		return nil, err
	}

	return &domain.AccountBalance{
		AccountID:   ap.Account.AccountID,
		AccountCode: ap.Account.Code,
		AccountName: ap.Account.Name,
		AccountType: ap.Account.AccountType,
		Balance:     balance,
	}, nil
}
