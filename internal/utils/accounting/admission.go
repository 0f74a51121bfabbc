package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MinEntries is the smallest number of entries a transaction may carry.
const MinEntries = 2

// AmountScale is the maximum number of fractional digits accepted in an amount.
const AmountScale = 2

// MaxAmount is the exclusive upper bound of an entry amount, matching the
// NUMERIC(15,2) column of ledger_entries.
var MaxAmount = decimal.New(1, 15-AmountScale)

// ValidateStructure checks entry count, amounts and sides.
func ValidateStructure(entries []domain.ProposedEntry) error {
	if len(entries) < MinEntries {
		return fmt.Errorf("%w: transaction must have at least %d entries, got %d", apperrors.ErrInvalidStructure, MinEntries, len(entries))
	}
	for i, e := range entries {
		if e.AccountID == "" {
			return fmt.Errorf("%w: entry %d has no account", apperrors.ErrInvalidStructure, i)
		}
		if !e.Amount.IsPositive() {
			return fmt.Errorf("%w: entry %d amount must be positive", apperrors.ErrInvalidStructure, i)
		}
		if e.Amount.GreaterThanOrEqual(MaxAmount) {
			return fmt.Errorf("%w: entry %d amount must be below %s", apperrors.ErrInvalidStructure, i, MaxAmount.String())
		}
		if !e.Amount.Equal(e.Amount.Truncate(AmountScale)) {
			return fmt.Errorf("%w: entry %d amount has more than %d decimal places", apperrors.ErrInvalidStructure, i, AmountScale)
		}
		if _, err := domain.ParseEntrySide(string(e.Side)); err != nil {
			return fmt.Errorf("%w: entry %d: %v", apperrors.ErrInvalidStructure, i, err)
		}
	}
	return nil
}

// ValidateAccounts checks that every entry references an account owned by clientID.
// accounts holds whatever the tenant-scoped lookup returned, keyed by account ID.
func ValidateAccounts(clientID string, entries []domain.ProposedEntry, accounts map[string]domain.Account) error {
	for i, e := range entries {
		acc, ok := accounts[e.AccountID]
		if !ok || acc.ClientID != clientID {
			return fmt.Errorf("%w: entry %d references account %s", apperrors.ErrUnknownAccount, i, e.AccountID)
		}
	}
	return nil
}

// ValidateBalance checks that debits equal credits and returns both totals.
func ValidateBalance(entries []domain.ProposedEntry) (decimal.Decimal, decimal.Decimal, error) {
	postings := make([]domain.Posting, len(entries))
	for i, e := range entries {
		postings[i] = domain.Posting{Amount: e.Amount, Side: e.Side}
	}
	debits, credits := SideTotals(postings)
	if !debits.Equal(credits) {
		return debits, credits, &apperrors.UnbalancedError{Debits: debits, Credits: credits}
	}
	return debits, credits, nil
}

// AccountIDs returns the distinct account IDs referenced by entries, in first-seen order.
func AccountIDs(entries []domain.ProposedEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; ok {
			continue
		}
		seen[e.AccountID] = struct{}{}
		ids = append(ids, e.AccountID)
	}
	return ids
}
