package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_app/internal/models"
	"github.com/SscSPs/ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	if !validIDs(clientID) {
		return nil, apperrors.ErrNotFound
	}

	query := `
		SELECT id, name, email, phone, address, active, created_at, updated_at
		FROM clients
		WHERE id = $1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

// SaveClientWithUser creates the tenant and its first user atomically.
// A clash on either email yields ErrDuplicate.
func (r *PgxClientRepository) SaveClientWithUser(ctx context.Context, client domain.Client, user domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	c := mapping.ToModelClient(client)
	_, err = tx.Exec(ctx, `
		INSERT INTO clients (id, name, email, phone, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		c.ClientID, c.Name, c.Email, c.Phone, c.Address, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client with email %s already exists", apperrors.ErrDuplicate, c.Email)
		}
		return fmt.Errorf("failed to save client %s: %w", c.ClientID, err)
	}

	u := mapping.ToModelUser(user)
	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, client_id, email, password_hash, first_name, last_name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		u.UserID, u.ClientID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, u.Email)
		}
		return fmt.Errorf("failed to save user %s: %w", u.UserID, err)
	}

	return r.Commit(ctx, tx)
}
