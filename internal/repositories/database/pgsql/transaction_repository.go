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
	"github.com/SscSPs/ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, client_id, date, description, reference, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transactions and their ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.ClientID,
		&m.Date,
		&m.Description,
		&m.Reference,
		&m.CreatedAt,
	)
	return m, err
}

// SaveTransaction writes the header and every entry inside one database transaction.
// An entry whose account is not owned by the transaction's client inserts no row,
// which aborts the whole write.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after a successful commit

	header := mapping.ToModelTransaction(txn)
	headerQuery := `
		INSERT INTO transactions (id, client_id, date, description, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, headerQuery,
		header.TransactionID,
		header.ClientID,
		header.Date,
		header.Description,
		header.Reference,
		header.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+header.TransactionID, err)
	}

	entryQuery := `
		INSERT INTO ledger_entries (id, transaction_id, account_id, line_no, amount, side)
		SELECT $1, $2, a.id, $4, $5, $6::entry_side
		FROM accounts a
		WHERE a.id = $3 AND a.client_id = $7;
	`
	batch := &pgx.Batch{}
	for i, entry := range txn.Entries {
		m := mapping.ToModelLedgerEntry(entry)
		batch.Queue(entryQuery,
			m.EntryID,
			header.TransactionID,
			m.AccountID,
			i+1,
			m.Amount,
			string(m.Side),
			header.ClientID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to insert entry %d: %w", i+1, err)
			}
		} else if ct.RowsAffected() != 1 && batchErr == nil {
			batchErr = fmt.Errorf("entry %d: account %s is not available to client %s", i+1, txn.Entries[i].AccountID, header.ClientID)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close entry batch: %w", err)
	}
	if batchErr != nil {
		return apperrors.NewAppError(500, "failed to write entries for transaction "+header.TransactionID, batchErr)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction owned by clientID with its annotated entries.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, clientID, transactionID string) (*domain.Transaction, error) {
	if !validIDs(clientID, transactionID) {
		return nil, apperrors.ErrNotFound
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND client_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	entries, err := r.findEntriesByTransactionIDs(ctx, []string{m.TransactionID})
	if err != nil {
		return nil, err
	}

	txn := mapping.ToDomainTransaction(m)
	txn.Entries = entries[txn.TransactionID]
	return &txn, nil
}

// ListTransactions retrieves a page of the client's transactions, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, clientID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	if !validIDs(clientID) {
		return []domain.Transaction{}, nil, nil
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE client_id = $1`
	args := []interface{}{clientID}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	query += ` ORDER BY date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for client "+clientID, err)
	}
	defer rows.Close()

	page := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for client "+clientID, err)
		}
		page = append(page, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for client "+clientID, err)
	}

	var nextTokenVal *string
	if len(page) > limit {
		last := page[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		page = page[:limit]
	}

	ids := make([]string, len(page))
	for i, m := range page {
		ids[i] = m.TransactionID
	}
	entries, err := r.findEntriesByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	txns := make([]domain.Transaction, len(page))
	for i, m := range page {
		txns[i] = mapping.ToDomainTransaction(m)
		txns[i].Entries = entries[m.TransactionID]
	}
	return txns, nextTokenVal, nil
}

// DeleteTransaction removes a transaction owned by clientID; its entries cascade.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, clientID, transactionID string) error {
	if !validIDs(clientID, transactionID) {
		return apperrors.ErrNotFound
	}

	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND client_id = $2;`, transactionID, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// findEntriesByTransactionIDs loads entries in line order, keyed by transaction ID.
func (r *PgxTransactionRepository) findEntriesByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]domain.LedgerEntry, error) {
	result := make(map[string][]domain.LedgerEntry, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT e.id, e.transaction_id, e.account_id, e.amount, e.side::text, a.code, a.name, a.type::text
		FROM ledger_entries e
		JOIN accounts a ON a.id = e.account_id
		WHERE e.transaction_id = ANY($1::uuid[])
		ORDER BY e.transaction_id, e.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.LedgerEntry
		var a models.Account
		if err := rows.Scan(
			&e.EntryID,
			&e.TransactionID,
			&e.AccountID,
			&e.Amount,
			&e.Side,
			&a.Code,
			&a.Name,
			&a.AccountType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		result[e.TransactionID] = append(result[e.TransactionID], mapping.ToDomainLedgerEntry(e, &a))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return result, nil
}
