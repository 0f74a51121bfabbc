package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a ledger entry is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// ParseEntrySide converts a raw string into an EntrySide.
func ParseEntrySide(s string) (EntrySide, error) {
	switch side := EntrySide(s); side {
	case Debit, Credit:
		return side, nil
	default:
		return "", fmt.Errorf("unknown entry side %q", s)
	}
}

// Opposite returns the other side.
func (s EntrySide) Opposite() EntrySide {
	if s == Debit {
		return Credit
	}
	return Debit
}

// Transaction is a journal entry header. It owns two or more ledger entries
// whose debit total equals their credit total.
type Transaction struct {
	TransactionID string        `json:"transactionID"`
	ClientID      string        `json:"clientID"`
	Date          time.Time     `json:"date"`
	Description   string        `json:"description"`
	Reference     *string       `json:"reference,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	Entries       []LedgerEntry `json:"entries"`
}

// LedgerEntry is one immutable posting line of a transaction.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Side          EntrySide       `json:"side"`

	// Account is populated on reads for display.
	Account *AccountRef `json:"account,omitempty"`
}

// AccountRef carries the identity fields of the account an entry posts to.
type AccountRef struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
}

// ProposedEntry is an entry as submitted for admission, before validation.
type ProposedEntry struct {
	AccountID string
	Amount    decimal.Decimal
	Side      EntrySide
}

// ProposedTransaction is a transaction as submitted for admission.
type ProposedTransaction struct {
	Date        time.Time
	Description string
	Reference   *string
	Entries     []ProposedEntry
}

// TransactionFilter narrows transaction listings. Both bounds are inclusive calendar dates.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
