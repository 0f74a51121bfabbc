package mapping

import (
	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction header to its row.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ClientID:      d.ClientID,
		Date:          d.Date,
		Description:   d.Description,
		Reference:     d.Reference,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a transaction row; entries are attached separately.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ClientID:      m.ClientID,
		Date:          m.Date,
		Description:   m.Description,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelLedgerEntry converts a domain entry to its row.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		Side:          models.EntrySide(d.Side),
	}
}

// ToDomainLedgerEntry converts an entry row, attaching the account annotation when present.
func ToDomainLedgerEntry(m models.LedgerEntry, account *models.Account) domain.LedgerEntry {
	e := domain.LedgerEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Side:          domain.EntrySide(m.Side),
	}
	if account != nil {
		e.Account = &domain.AccountRef{Code: account.Code, Name: account.Name, AccountType: domain.AccountType(account.AccountType)}
	}
	return e
}
