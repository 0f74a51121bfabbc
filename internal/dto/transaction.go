package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is one proposed posting line.
// Amount and side are checked by the admission validator, not by binding.
type CreateEntryRequest struct {
	AccountID string          `json:"accountId" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Side      string          `json:"side"`
}

// CreateTransactionRequest defines the data needed to post a transaction.
type CreateTransactionRequest struct {
	Date        string               `json:"date" binding:"required"`
	Description string               `json:"description" binding:"required,max=500"`
	Reference   *string              `json:"reference" binding:"omitempty,max=100"`
	Entries     []CreateEntryRequest `json:"entries"`
}

// ToProposedTransaction parses the request into the admission input.
func (r CreateTransactionRequest) ToProposedTransaction() (domain.ProposedTransaction, error) {
	date, err := time.Parse(domain.DateLayout, r.Date)
	if err != nil {
		return domain.ProposedTransaction{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	entries := make([]domain.ProposedEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.ProposedEntry{
			AccountID: e.AccountID,
			Amount:    e.Amount,
			Side:      domain.EntrySide(e.Side),
		}
	}
	return domain.ProposedTransaction{
		Date:        date,
		Description: r.Description,
		Reference:   r.Reference,
		Entries:     entries,
	}, nil
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	StartDate string  `form:"startDate"`
	EndDate   string  `form:"endDate"`
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ToFilter parses the optional date bounds.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter
	if p.StartDate != "" {
		start, err := time.Parse(domain.DateLayout, p.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: startDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.StartDate = &start
	}
	if p.EndDate != "" {
		end, err := time.Parse(domain.DateLayout, p.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: endDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.EndDate = &end
	}
	return filter, nil
}

// EntryAccountResponse identifies the account an entry posts to.
type EntryAccountResponse struct {
	Code string             `json:"code"`
	Name string             `json:"name"`
	Type domain.AccountType `json:"type"`
}

// EntryResponse is one persisted posting line.
type EntryResponse struct {
	EntryID   string                `json:"id"`
	AccountID string                `json:"accountId"`
	Amount    string                `json:"amount"`
	Side      domain.EntrySide      `json:"side"`
	Account   *EntryAccountResponse `json:"account,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"id"`
	ClientID      string          `json:"clientId"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Reference     *string         `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	Entries       []EntryResponse `json:"entries"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	entries := make([]EntryResponse, len(txn.Entries))
	for i, e := range txn.Entries {
		entries[i] = EntryResponse{
			EntryID:   e.EntryID,
			AccountID: e.AccountID,
			Amount:    FormatAmount(e.Amount),
			Side:      e.Side,
		}
		if e.Account != nil {
			entries[i].Account = &EntryAccountResponse{Code: e.Account.Code, Name: e.Account.Name, Type: e.Account.AccountType}
		}
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		ClientID:      txn.ClientID,
		Date:          FormatDate(txn.Date),
		Description:   txn.Description,
		Reference:     txn.Reference,
		CreatedAt:     txn.CreatedAt,
		Entries:       entries,
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	res := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txns)), NextToken: nextToken}
	for i := range txns {
		res.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
