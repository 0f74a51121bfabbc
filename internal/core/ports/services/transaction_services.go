package services

import (
	"context"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, clientID string, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, clientID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines the admission and removal of transactions
type TransactionWriterSvc interface {
	// CreateTransaction validates the proposed transaction and persists it atomically.
	CreateTransaction(ctx context.Context, clientID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and all of its entries.
	DeleteTransaction(ctx context.Context, clientID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
