package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide mirrors the entry_side enum.
type EntrySide string

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID string    `db:"id"`
	ClientID      string    `db:"client_id"`
	Date          time.Time `db:"date"`
	Description   string    `db:"description"`
	Reference     *string   `db:"reference"`
	CreatedAt     time.Time `db:"created_at"`
}

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID       string          `db:"id"`
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Side          EntrySide       `db:"side"`
}
