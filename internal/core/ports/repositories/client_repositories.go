package repositories

import (
	"context"

	"github.com/SscSPs/ledger_app/internal/core/domain"
)

// ClientReader defines read operations for tenants.
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientWriter defines write operations for tenants.
type ClientWriter interface {
	// SaveClientWithUser creates a tenant and its first user in one database transaction.
	SaveClientWithUser(ctx context.Context, client domain.Client, user domain.User) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
