package repositories

import (
	"context"

	"github.com/SscSPs/ledger_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Every method is scoped to a single client.
type AccountReader interface {
	// FindAccountByID retrieves an account owned by clientID.
	FindAccountByID(ctx context.Context, clientID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the subset of accountIDs owned by clientID, keyed by ID.
	// IDs that are missing or foreign are simply absent from the result.
	FindAccountsByIDs(ctx context.Context, clientID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the client's accounts ordered by type then code.
	ListAccounts(ctx context.Context, clientID string, filter domain.AccountFilter) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A duplicate code within the client yields ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name, description and active flag. Type and code are never written.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
