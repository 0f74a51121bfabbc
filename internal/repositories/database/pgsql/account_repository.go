package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_app/internal/models"
	"github.com/SscSPs/ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, client_id, code, name, type::text, description, active, created_at, updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.ClientID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (id, client_id, code, name, type, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::account_type, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.ClientID,
		m.Code,
		m.Name,
		string(m.AccountType),
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account owned by clientID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, clientID, accountID string) (*domain.Account, error) {
	if !validIDs(clientID, accountID) {
		return nil, apperrors.ErrNotFound
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND client_id = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByIDs retrieves the accounts among accountIDs that belong to clientID.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, clientID string, accountIDs []string) (map[string]domain.Account, error) {
	accountsMap := make(map[string]domain.Account)
	ids := filterValidIDs(accountIDs)
	if len(ids) == 0 || !validIDs(clientID) {
		return accountsMap, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = $1 AND id = ANY($2::uuid[]);`
	rows, err := r.Pool.Query(ctx, query, clientID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row during batch fetch: %w", err)
		}
		accountsMap[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows during batch fetch: %w", err)
	}

	// Missing or foreign IDs are simply absent; the caller decides what that means.
	return accountsMap, nil
}

// ListAccounts retrieves the client's accounts ordered by type then code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, clientID string, filter domain.AccountFilter) ([]domain.Account, error) {
	accounts := []domain.Account{}
	if !validIDs(clientID) {
		return accounts, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = $1`
	args := []interface{}{clientID}
	if filter.AccountType != nil {
		args = append(args, string(*filter.AccountType))
		query += ` AND type = $` + strconv.Itoa(len(args)) + `::account_type`
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += ` AND active = $` + strconv.Itoa(len(args))
	}
	// Enum declaration order is the report order.
	query += ` ORDER BY type, code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for client %s: %w", clientID, err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for client %s: %w", clientID, err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows for client %s: %w", clientID, err)
	}

	return accounts, nil
}

// UpdateAccount writes the mutable fields of an account. Code and type are never changed.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	if !validIDs(account.ClientID, account.AccountID) {
		return apperrors.ErrNotFound
	}
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $3, description = $4, active = $5, updated_at = $6
		WHERE id = $1 AND client_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.ClientID,
		m.Name,
		m.Description,
		m.IsActive,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
