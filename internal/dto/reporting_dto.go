package dto

import (
	"github.com/SscSPs/ledger_app/internal/core/domain"
)

// AsOfParams defines query parameters for the trial balance and balance sheet.
type AsOfParams struct {
	AsOf string `form:"asOf"`
}

// PeriodParams defines query parameters for the income statement.
type PeriodParams struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID     string             `json:"accountId"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"type"`
	DebitBalance  string             `json:"debitBalance"`
	CreditBalance string             `json:"creditBalance"`
}

// TrialBalanceTotals holds the column sums.
type TrialBalanceTotals struct {
	Debits   string `json:"debits"`
	Credits  string `json:"credits"`
	Balanced bool   `json:"balanced"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf     string                    `json:"asOf"`
	Balances []TrialBalanceRowResponse `json:"balances"`
	Totals   TrialBalanceTotals        `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string `json:"accountId"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
}

// PeriodResponse echoes the income statement window.
type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// IncomeStatementTotals summarises the income statement.
type IncomeStatementTotals struct {
	Revenue   string `json:"revenue"`
	Expense   string `json:"expense"`
	NetIncome string `json:"netIncome"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	Period   PeriodResponse          `json:"period"`
	Revenues []AccountAmountResponse `json:"revenues"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Totals   IncomeStatementTotals   `json:"totals"`
}

// BalanceSheetLineResponse is one account on the balance sheet.
type BalanceSheetLineResponse struct {
	AccountID string `json:"accountId"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Balance   string `json:"balance"`
}

// BalanceSheetTotals summarises the balance sheet. Equity includes current earnings.
type BalanceSheetTotals struct {
	Assets               string `json:"assets"`
	Liabilities          string `json:"liabilities"`
	Equity               string `json:"equity"`
	CurrentEarnings      string `json:"currentEarnings"`
	LiabilitiesAndEquity string `json:"liabilitiesAndEquity"`
	Balanced             bool   `json:"balanced"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                     `json:"asOf"`
	Assets      []BalanceSheetLineResponse `json:"assets"`
	Liabilities []BalanceSheetLineResponse `json:"liabilities"`
	Equity      []BalanceSheetLineResponse `json:"equity"`
	Totals      BalanceSheetTotals         `json:"totals"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf:     FormatDate(report.AsOf),
		Balances: make([]TrialBalanceRowResponse, len(report.Rows)),
		Totals: TrialBalanceTotals{
			Debits:   FormatAmount(report.TotalDebits),
			Credits:  FormatAmount(report.TotalCredits),
			Balanced: report.Balanced,
		},
	}
	for i, row := range report.Rows {
		response.Balances[i] = TrialBalanceRowResponse{
			AccountID:     row.AccountID,
			Code:          row.Code,
			Name:          row.Name,
			AccountType:   row.AccountType,
			DebitBalance:  FormatAmount(row.Debit),
			CreditBalance: FormatAmount(row.Credit),
		}
	}
	return response
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(report *domain.IncomeStatementReport) IncomeStatementResponse {
	return IncomeStatementResponse{
		Period:   PeriodResponse{StartDate: FormatDate(report.StartDate), EndDate: FormatDate(report.EndDate)},
		Revenues: toAccountAmountResponses(report.Revenues),
		Expenses: toAccountAmountResponses(report.Expenses),
		Totals: IncomeStatementTotals{
			Revenue:   FormatAmount(report.TotalRevenue),
			Expense:   FormatAmount(report.TotalExpense),
			NetIncome: FormatAmount(report.NetIncome),
		},
	}
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:        FormatDate(report.AsOf),
		Assets:      toBalanceSheetLines(report.Assets),
		Liabilities: toBalanceSheetLines(report.Liabilities),
		Equity:      toBalanceSheetLines(report.Equity),
		Totals: BalanceSheetTotals{
			Assets:               FormatAmount(report.TotalAssets),
			Liabilities:          FormatAmount(report.TotalLiabilities),
			Equity:               FormatAmount(report.TotalEquity),
			CurrentEarnings:      FormatAmount(report.CurrentEarnings),
			LiabilitiesAndEquity: FormatAmount(report.TotalLiabilitiesAndEquity),
			Balanced:             report.Balanced,
		},
	}
}

func toAccountAmountResponses(lines []domain.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(lines))
	for i, l := range lines {
		res[i] = AccountAmountResponse{AccountID: l.AccountID, Code: l.Code, Name: l.Name, Amount: FormatAmount(l.Amount)}
	}
	return res
}

func toBalanceSheetLines(lines []domain.AccountAmount) []BalanceSheetLineResponse {
	res := make([]BalanceSheetLineResponse, len(lines))
	for i, l := range lines {
		res[i] = BalanceSheetLineResponse{AccountID: l.AccountID, Code: l.Code, Name: l.Name, Balance: FormatAmount(l.Amount)}
	}
	return res
}
