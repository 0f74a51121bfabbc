package models

// AccountType mirrors the account_type enum.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountID   string      `db:"id"`
	ClientID    string      `db:"client_id"`
	Code        string      `db:"code"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"type"`
	Description *string     `db:"description"`
	IsActive    bool        `db:"active"`
	Timestamps
}
