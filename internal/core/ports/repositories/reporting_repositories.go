package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
)

// PostingWindow bounds the transaction dates of the postings read for a report.
// Both bounds are inclusive calendar dates; nil means unbounded.
type PostingWindow struct {
	From *time.Time
	To   *time.Time
}

// ReportingRepository defines the tenant-scoped reads the report generator is built on.
type ReportingRepository interface {
	// ListActiveAccountPostings returns every active account of the given types owned by clientID,
	// each with its postings whose transaction date falls inside window. Accounts without
	// postings in the window are included with an empty posting list.
	ListActiveAccountPostings(ctx context.Context, clientID string, types []domain.AccountType, window PostingWindow) ([]domain.AccountPostings, error)

	// FindAccountPostings returns one account owned by clientID with all of its postings.
	FindAccountPostings(ctx context.Context, clientID, accountID string) (*domain.AccountPostings, error)
}
