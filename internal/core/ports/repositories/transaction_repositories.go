package repositories

import (
	"context"

	"github.com/SscSPs/ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for transactions and their entries.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction owned by clientID with its entries annotated
	// with account code, name and type.
	FindTransactionByID(ctx context.Context, clientID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of the client's transactions, newest first, using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, clientID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the atomic write operations of the ledger.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction row and all of its entries in one database transaction.
	// Entries are only written against accounts owned by the transaction's client.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by clientID together with its entries.
	DeleteTransaction(ctx context.Context, clientID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
