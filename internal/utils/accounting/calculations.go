package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a posting amount based on the account type.
// Postings on the account's normal side are positive, postings on the other side negative.
func CalculateSignedAmount(amount decimal.Decimal, side domain.EntrySide, accountType domain.AccountType) (decimal.Decimal, error) {
	normal, err := accountType.NormalSide()
	if err != nil {
		return decimal.Zero, err
	}
	switch side {
	case normal:
		return amount, nil
	case normal.Opposite():
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown entry side %q", string(side))
	}
}

// EvaluateBalance folds postings into a signed balance for an account of the given type.
// No rounding is applied; callers round at presentation.
// The account type is checked even when there are no postings.
func EvaluateBalance(accountType domain.AccountType, postings []domain.Posting) (decimal.Decimal, error) {
	if _, err := accountType.NormalSide(); err != nil {
		return decimal.Zero, err
	}
	balance := decimal.Zero
	for i, p := range postings {
		signed, err := CalculateSignedAmount(p.Amount, p.Side, accountType)
		if err != nil {
			return decimal.Zero, fmt.Errorf("posting %d: %w", i, err)
		}
		balance = balance.Add(signed)
	}
	return balance, nil
}

// SideTotals sums posting amounts per side.
func SideTotals(postings []domain.Posting) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, p := range postings {
		switch p.Side {
		case domain.Debit:
			debits = debits.Add(p.Amount)
		case domain.Credit:
			credits = credits.Add(p.Amount)
		}
	}
	return debits, credits
}
