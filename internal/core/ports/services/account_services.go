package services

import (
	"context"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account owned by clientID.
	GetAccountByID(ctx context.Context, clientID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the client's chart of accounts ordered by type then code.
	ListAccounts(ctx context.Context, clientID string, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, clientID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates name, description and active flag.
	UpdateAccount(ctx context.Context, clientID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
