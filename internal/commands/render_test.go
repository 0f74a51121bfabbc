package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWriteTrialBalance(t *testing.T) {
	report := &domain.TrialBalanceReport{
		AsOf: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Rows: []domain.TrialBalanceRow{
			{Code: "1000", Name: "Cash", AccountType: domain.Asset, Debit: d("10000"), Credit: decimal.Zero},
			{Code: "3000", Name: "Owner's Equity", AccountType: domain.Equity, Debit: decimal.Zero, Credit: d("10000")},
		},
		TotalDebits:  d("10000"),
		TotalCredits: d("10000"),
		Balanced:     true,
	}

	var buf bytes.Buffer
	require.NoError(t, writeTrialBalance(&buf, report, "USD"))

	out := buf.String()
	assert.Contains(t, out, "Trial balance as of 2025-01-31")
	assert.Contains(t, out, "Owner's Equity")
	assert.Contains(t, out, "$10,000.00")
	assert.Contains(t, out, "balanced")
	assert.NotContains(t, out, "NOT BALANCED")
}

func TestWriteIncomeStatement(t *testing.T) {
	report := &domain.IncomeStatementReport{
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Revenues:     []domain.AccountAmount{{Code: "4000", Name: "Sales Revenue", Amount: d("500")}},
		Expenses:     []domain.AccountAmount{{Code: "6000", Name: "Rent Expense", Amount: d("200")}},
		TotalRevenue: d("500"),
		TotalExpense: d("200"),
		NetIncome:    d("300"),
	}

	var buf bytes.Buffer
	require.NoError(t, writeIncomeStatement(&buf, report, "EUR"))

	out := buf.String()
	assert.Contains(t, out, "Income statement 2025-01-01 to 2025-01-31")
	assert.Contains(t, out, "Rent Expense")
	assert.Contains(t, out, "Net income")
	assert.Contains(t, out, "300")
}

func TestWriteBalanceSheetUnbalanced(t *testing.T) {
	report := &domain.BalanceSheetReport{
		AsOf:                      time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Assets:                    []domain.AccountAmount{{Code: "1000", Name: "Cash", Amount: d("100")}},
		TotalAssets:               d("100"),
		TotalLiabilities:          decimal.Zero,
		TotalEquity:               d("90"),
		CurrentEarnings:           d("-10"),
		TotalLiabilitiesAndEquity: d("90"),
		Balanced:                  false,
	}

	var buf bytes.Buffer
	require.NoError(t, writeBalanceSheet(&buf, report, "USD"))

	out := buf.String()
	assert.Contains(t, out, "Current earnings")
	assert.Contains(t, out, "NOT BALANCED")
}

func TestParseDateFlag(t *testing.T) {
	fixed := func() time.Time { return time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC) }

	got, err := parseDateFlag("as-of", "", fixed)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDateFlag("as-of", "2025-02-28", fixed)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDateFlag("start", "", nil)
	assert.EqualError(t, err, "--start is required")

	_, err = parseDateFlag("as-of", "02/28/2025", fixed)
	assert.Error(t, err)
}
