package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_app/internal/models"
	"github.com/SscSPs/ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// The posting join is scoped by client on both sides so a foreign transaction can
// never contribute to a report. $3 and $4 are optional inclusive date bounds.
const accountPostingsQuery = `
	SELECT a.id, a.client_id, a.code, a.name, a.type::text, a.description, a.active, a.created_at, a.updated_at,
	       p.amount, p.side
	FROM accounts a
	LEFT JOIN (
		SELECT e.account_id, e.amount, e.side::text AS side, t.date, t.created_at AS txn_created_at, e.line_no
		FROM ledger_entries e
		JOIN transactions t ON t.id = e.transaction_id
		WHERE t.client_id = $1
		  AND ($3::date IS NULL OR t.date >= $3::date)
		  AND ($4::date IS NULL OR t.date <= $4::date)
	) p ON p.account_id = a.id
	WHERE a.client_id = $1
`

// ListActiveAccountPostings returns active accounts of the given types with their postings inside window.
func (r *reportingRepository) ListActiveAccountPostings(ctx context.Context, clientID string, types []domain.AccountType, window portsrepo.PostingWindow) ([]domain.AccountPostings, error) {
	if !validIDs(clientID) || len(types) == 0 {
		return []domain.AccountPostings{}, nil
	}

	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	query := accountPostingsQuery + `
		  AND a.active = TRUE
		  AND a.type::text = ANY($2::text[])
		ORDER BY a.type, a.code, p.date, p.txn_created_at, p.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, clientID, typeNames, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("error querying account postings: %w", err)
	}
	return collectAccountPostings(rows)
}

// FindAccountPostings returns one account with its complete posting history.
func (r *reportingRepository) FindAccountPostings(ctx context.Context, clientID, accountID string) (*domain.AccountPostings, error) {
	if !validIDs(clientID, accountID) {
		return nil, apperrors.ErrNotFound
	}

	query := accountPostingsQuery + `
		  AND a.id = $2
		ORDER BY p.date, p.txn_created_at, p.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, clientID, accountID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("error querying postings for account %s: %w", accountID, err)
	}
	result, err := collectAccountPostings(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &result[0], nil
}

// collectAccountPostings folds the account-per-posting rows into one AccountPostings per account,
// preserving row order. A NULL posting means the account has no postings.
func collectAccountPostings(rows pgx.Rows) ([]domain.AccountPostings, error) {
	defer rows.Close()

	result := []domain.AccountPostings{}
	index := make(map[string]int)
	for rows.Next() {
		var m models.Account
		var amount decimal.NullDecimal
		var side *string
		if err := rows.Scan(
			&m.AccountID,
			&m.ClientID,
			&m.Code,
			&m.Name,
			&m.AccountType,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.UpdatedAt,
			&amount,
			&side,
		); err != nil {
			return nil, fmt.Errorf("error scanning account posting row: %w", err)
		}

		i, ok := index[m.AccountID]
		if !ok {
			i = len(result)
			index[m.AccountID] = i
			result = append(result, domain.AccountPostings{Account: mapping.ToDomainAccount(m), Postings: []domain.Posting{}})
		}
		if amount.Valid && side != nil {
			result[i].Postings = append(result[i].Postings, domain.Posting{Amount: amount.Decimal, Side: domain.EntrySide(*side)})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account posting rows: %w", err)
	}
	return result, nil
}
