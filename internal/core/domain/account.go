package domain

import "fmt"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every account type in report order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// ParseAccountType converts a raw string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown account type %q", s)
	}
	return t, nil
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalSide returns the side on which postings increase an account of this type.
func (t AccountType) NormalSide() (EntrySide, error) {
	switch t {
	case Asset, Expense:
		return Debit, nil
	case Liability, Equity, Revenue:
		return Credit, nil
	default:
		return "", fmt.Errorf("unknown account type %q", string(t))
	}
}

// Rank is the position of the type in report ordering. Unknown types sort last.
func (t AccountType) Rank() int {
	switch t {
	case Asset:
		return 0
	case Liability:
		return 1
	case Equity:
		return 2
	case Revenue:
		return 3
	case Expense:
		return 4
	default:
		return len(AccountTypes)
	}
}

// Account represents a chart-of-accounts entry within the core domain.
// Type is fixed at creation; deactivation replaces deletion.
type Account struct {
	AccountID   string      `json:"accountID"`
	ClientID    string      `json:"clientID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	Timestamps
}

// AccountFilter narrows account listings. Nil fields are not applied.
type AccountFilter struct {
	AccountType *AccountType
	IsActive    *bool
}
