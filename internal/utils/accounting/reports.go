package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SortAccountPostings orders accounts by type, then by code ascending.
func SortAccountPostings(accounts []domain.AccountPostings) {
	sort.SliceStable(accounts, func(i, j int) bool {
		a, b := accounts[i].Account, accounts[j].Account
		if a.AccountType.Rank() != b.AccountType.Rank() {
			return a.AccountType.Rank() < b.AccountType.Rank()
		}
		return a.Code < b.Code
	})
}

// BuildTrialBalance places every account's balance in exactly one column.
// A balance opposite to the account's normal side is shown as a magnitude in the other column.
func BuildTrialBalance(asOf time.Time, accounts []domain.AccountPostings) (domain.TrialBalanceReport, error) {
	SortAccountPostings(accounts)

	report := domain.TrialBalanceReport{
		AsOf:         asOf,
		Rows:         make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, ap := range accounts {
		balance, err := EvaluateBalance(ap.Account.AccountType, ap.Postings)
		if err != nil {
			return domain.TrialBalanceReport{}, fmt.Errorf("account %s: %w", ap.Account.AccountID, err)
		}
		normal, err := ap.Account.AccountType.NormalSide()
		if err != nil {
			return domain.TrialBalanceReport{}, fmt.Errorf("account %s: %w", ap.Account.AccountID, err)
		}

		column := normal
		if balance.IsNegative() {
			column = normal.Opposite()
		}
		row := domain.TrialBalanceRow{
			AccountID:   ap.Account.AccountID,
			Code:        ap.Account.Code,
			Name:        ap.Account.Name,
			AccountType: ap.Account.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if column == domain.Debit {
			row.Debit = balance.Abs()
		} else {
			row.Credit = balance.Abs()
		}

		report.TotalDebits = report.TotalDebits.Add(row.Debit)
		report.TotalCredits = report.TotalCredits.Add(row.Credit)
		report.Rows = append(report.Rows, row)
	}
	report.Balanced = report.TotalDebits.Equal(report.TotalCredits)
	return report, nil
}

// BuildIncomeStatement reports revenue and expense magnitudes for the postings supplied.
// Accounts of other types are ignored.
func BuildIncomeStatement(start, end time.Time, accounts []domain.AccountPostings) (domain.IncomeStatementReport, error) {
	SortAccountPostings(accounts)

	report := domain.IncomeStatementReport{
		StartDate:    start,
		EndDate:      end,
		Revenues:     []domain.AccountAmount{},
		Expenses:     []domain.AccountAmount{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, ap := range accounts {
		switch ap.Account.AccountType {
		case domain.Revenue, domain.Expense:
		case domain.Asset, domain.Liability, domain.Equity:
			continue
		default:
			return domain.IncomeStatementReport{}, fmt.Errorf("account %s: unknown account type %q", ap.Account.AccountID, string(ap.Account.AccountType))
		}

		debits, credits := SideTotals(ap.Postings)
		line := toAccountAmount(ap.Account, credits.Sub(debits).Abs())

		if ap.Account.AccountType == domain.Revenue {
			report.Revenues = append(report.Revenues, line)
			report.TotalRevenue = report.TotalRevenue.Add(line.Amount)
		} else {
			report.Expenses = append(report.Expenses, line)
			report.TotalExpense = report.TotalExpense.Add(line.Amount)
		}
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpense)
	return report, nil
}

// BuildBalanceSheet reports asset, liability and equity balances using each account's own polarity.
// Revenue and expense postings are folded into CurrentEarnings, which counts toward equity.
func BuildBalanceSheet(asOf time.Time, accounts []domain.AccountPostings) (domain.BalanceSheetReport, error) {
	SortAccountPostings(accounts)

	report := domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		CurrentEarnings:  decimal.Zero,
	}
	for _, ap := range accounts {
		balance, err := EvaluateBalance(ap.Account.AccountType, ap.Postings)
		if err != nil {
			return domain.BalanceSheetReport{}, fmt.Errorf("account %s: %w", ap.Account.AccountID, err)
		}
		line := toAccountAmount(ap.Account, balance)

		switch ap.Account.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, line)
			report.TotalAssets = report.TotalAssets.Add(balance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, line)
			report.TotalLiabilities = report.TotalLiabilities.Add(balance)
		case domain.Equity:
			report.Equity = append(report.Equity, line)
			report.TotalEquity = report.TotalEquity.Add(balance)
		case domain.Revenue:
			report.CurrentEarnings = report.CurrentEarnings.Add(balance)
		case domain.Expense:
			report.CurrentEarnings = report.CurrentEarnings.Sub(balance)
		}
	}
	report.TotalEquity = report.TotalEquity.Add(report.CurrentEarnings)
	report.TotalLiabilitiesAndEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.Balanced = report.TotalAssets.Equal(report.TotalLiabilitiesAndEquity)
	return report, nil
}

func toAccountAmount(acc domain.Account, amount decimal.Decimal) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID:   acc.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Amount:      amount,
	}
}
