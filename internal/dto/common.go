package dto

import (
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Debits  string `json:"debits,omitempty"`
	Credits string `json:"credits,omitempty"`
}
