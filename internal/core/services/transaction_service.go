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
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/SscSPs/ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// transactionService admits, reads and removes ledger transactions.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
	now         func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the time source used for created_at.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction runs the admission checks in order (structure, accounts, balance)
// and persists the transaction only when all of them pass. Nothing is written on rejection.
func (s *transactionService) CreateTransaction(ctx context.Context, clientID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	proposed, err := req.ToProposedTransaction()
	if err != nil {
		return nil, err
	}

	if err := accounting.ValidateStructure(proposed.Entries); err != nil {
		s.LogWarn(ctx, "Transaction rejected", slog.String("kind", apperrors.Kind(err)), slog.String("reason", err.Error()))
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, clientID, accounting.AccountIDs(proposed.Entries))
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for transaction", slog.String("client_id", clientID))
		return nil, err
	}
	if err := accounting.ValidateAccounts(clientID, proposed.Entries, accounts); err != nil {
		s.LogWarn(ctx, "Transaction rejected", slog.String("kind", apperrors.Kind(err)), slog.String("reason", err.Error()),
			slog.String("client_id", clientID))
		return nil, err
	}

	if _, _, err := accounting.ValidateBalance(proposed.Entries); err != nil {
		s.LogWarn(ctx, "Transaction rejected", slog.String("kind", apperrors.Kind(err)), slog.String("reason", err.Error()))
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ClientID:      clientID,
		Date:          proposed.Date,
		Description:   proposed.Description,
		Reference:     proposed.Reference,
		// Postgres keeps microseconds; truncating keeps the keyset cursor exact.
		CreatedAt: s.now().Truncate(time.Microsecond),
		Entries:   make([]domain.LedgerEntry, len(proposed.Entries)),
	}
	for i, pe := range proposed.Entries {
		acc := accounts[pe.AccountID]
		txn.Entries[i] = domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     pe.AccountID,
			Amount:        pe.Amount,
			Side:          pe.Side,
			Account:       &domain.AccountRef{Code: acc.Code, Name: acc.Name, AccountType: acc.AccountType},
		}
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrWriteFailure, err)
	}

	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("entries", len(txn.Entries)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, clientID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, clientID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, clientID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, clientID, filter, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions", slog.String("client_id", clientID))
		}
		return nil, err
	}

	res := dto.ToListTransactionsResponse(txns, nextToken)
	return &res, nil
}

// DeleteTransaction removes the transaction and its entries in one statement.
func (s *transactionService) DeleteTransaction(ctx context.Context, clientID string, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, clientID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
