package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *HandlerTestSuite) TestTrialBalance_ExplicitAsOf() {
	asOf := day(2025, 1, 31)
	report := &domain.TrialBalanceReport{
		AsOf: asOf,
		Rows: []domain.TrialBalanceRow{
			{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, Debit: decimal.NewFromInt(10000), Credit: decimal.Zero},
			{AccountID: uuid.NewString(), Code: "3000", Name: "Owner's Equity", AccountType: domain.Equity, Debit: decimal.Zero, Credit: decimal.NewFromInt(10000)},
		},
		TotalDebits:  decimal.NewFromInt(10000),
		TotalCredits: decimal.NewFromInt(10000),
		Balanced:     true,
	}
	suite.mockReportService.On("TrialBalance", mock.Anything, suite.clientID, mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(asOf)
	})).Return(report, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2025-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-01-31", resp.AsOf)
	suite.Require().Len(resp.Balances, 2)
	suite.Equal("10000.00", resp.Balances[0].DebitBalance)
	suite.Equal("0.00", resp.Balances[0].CreditBalance)
	suite.Equal("10000.00", resp.Totals.Credits)
	suite.True(resp.Totals.Balanced)
}

func (suite *HandlerTestSuite) TestTrialBalance_DefaultsToToday() {
	suite.mockReportService.On("TrialBalance", mock.Anything, suite.clientID, mock.MatchedBy(func(t time.Time) bool {
		now := time.Now().UTC()
		return t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && now.Sub(t) < 25*time.Hour && now.Sub(t) >= 0
	})).Return(&domain.TrialBalanceReport{AsOf: time.Now().UTC(), Balanced: true}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/trial-balance", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestBalanceSheet_InvalidAsOf() {
	w := suite.perform(http.MethodGet, "/api/v1/reports/balance-sheet?asOf=31-01-2025", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION", suite.decodeError(w).Kind)
}

func (suite *HandlerTestSuite) TestBalanceSheet() {
	asOf := day(2025, 3, 31)
	report := &domain.BalanceSheetReport{
		AsOf:                      asOf,
		Assets:                    []domain.AccountAmount{{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, Amount: decimal.NewFromInt(10300)}},
		Equity:                    []domain.AccountAmount{{AccountID: uuid.NewString(), Code: "3000", Name: "Owner's Equity", AccountType: domain.Equity, Amount: decimal.NewFromInt(10000)}},
		TotalAssets:               decimal.NewFromInt(10300),
		TotalLiabilities:          decimal.Zero,
		TotalEquity:               decimal.NewFromInt(10300),
		CurrentEarnings:           decimal.NewFromInt(300),
		TotalLiabilitiesAndEquity: decimal.NewFromInt(10300),
		Balanced:                  true,
	}
	suite.mockReportService.On("BalanceSheet", mock.Anything, suite.clientID, mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(asOf)
	})).Return(report, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/balance-sheet?asOf=2025-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceSheetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("300.00", resp.Totals.CurrentEarnings)
	suite.Equal("10300.00", resp.Totals.LiabilitiesAndEquity)
	suite.Empty(resp.Liabilities)
	suite.True(resp.Totals.Balanced)
}

func (suite *HandlerTestSuite) TestIncomeStatement() {
	from, to := day(2025, 1, 1), day(2025, 1, 31)
	report := &domain.IncomeStatementReport{
		StartDate:    from,
		EndDate:      to,
		Revenues:     []domain.AccountAmount{{AccountID: uuid.NewString(), Code: "4000", Name: "Sales", AccountType: domain.Revenue, Amount: decimal.NewFromInt(500)}},
		Expenses:     []domain.AccountAmount{{AccountID: uuid.NewString(), Code: "5000", Name: "Rent", AccountType: domain.Expense, Amount: decimal.NewFromInt(200)}},
		TotalRevenue: decimal.NewFromInt(500),
		TotalExpense: decimal.NewFromInt(200),
		NetIncome:    decimal.NewFromInt(300),
	}
	suite.mockReportService.On("IncomeStatement", mock.Anything, suite.clientID,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(from) }),
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(to) }),
	).Return(report, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/income-statement?startDate=2025-01-01&endDate=2025-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.IncomeStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-01-01", resp.Period.StartDate)
	suite.Equal("300.00", resp.Totals.NetIncome)
	suite.Require().Len(resp.Expenses, 1)
	suite.Equal("200.00", resp.Expenses[0].Amount)
}

func (suite *HandlerTestSuite) TestIncomeStatement_RequiresBothDates() {
	for _, url := range []string{
		"/api/v1/reports/income-statement",
		"/api/v1/reports/income-statement?startDate=2025-01-01",
		"/api/v1/reports/income-statement?endDate=2025-01-31",
	} {
		w := suite.perform(http.MethodGet, url, nil)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.mockReportService.AssertNotCalled(suite.T(), "IncomeStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
