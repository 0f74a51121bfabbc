package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/SscSPs/ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func balancedLabel(ok bool) string {
	if ok {
		return "balanced"
	}
	return "NOT BALANCED"
}

// blankZero renders a zero trial balance column as empty.
func blankZero(d decimal.Decimal, currency string) string {
	if d.IsZero() {
		return ""
	}
	return utils.FormatMoney(d, currency)
}

func writeTrialBalance(w io.Writer, r *domain.TrialBalanceReport, currency string) error {
	fmt.Fprintf(w, "Trial balance as of %s\n\n", dto.FormatDate(r.AsOf))
	tw := newTable(w)
	fmt.Fprintln(tw, "Code\tAccount\tType\tDebit\tCredit\t")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", row.Code, row.Name, row.AccountType,
			blankZero(row.Debit, currency), blankZero(row.Credit, currency))
	}
	fmt.Fprintf(tw, "\tTotal\t\t%s\t%s\t\n", utils.FormatMoney(r.TotalDebits, currency), utils.FormatMoney(r.TotalCredits, currency))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", balancedLabel(r.Balanced))
	return err
}

func writeSection(tw *tabwriter.Writer, title string, lines []domain.AccountAmount, total decimal.Decimal, currency string) {
	fmt.Fprintf(tw, "%s\t\t\t\n", title)
	for _, l := range lines {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t\n", l.Code, l.Name, utils.FormatMoney(l.Amount, currency))
	}
	fmt.Fprintf(tw, "\tTotal %s\t%s\t\n", title, utils.FormatMoney(total, currency))
}

func writeIncomeStatement(w io.Writer, r *domain.IncomeStatementReport, currency string) error {
	fmt.Fprintf(w, "Income statement %s to %s\n\n", dto.FormatDate(r.StartDate), dto.FormatDate(r.EndDate))
	tw := newTable(w)
	writeSection(tw, "Revenue", r.Revenues, r.TotalRevenue, currency)
	writeSection(tw, "Expenses", r.Expenses, r.TotalExpense, currency)
	fmt.Fprintf(tw, "\tNet income\t%s\t\n", utils.FormatMoney(r.NetIncome, currency))
	return tw.Flush()
}

func writeBalanceSheet(w io.Writer, r *domain.BalanceSheetReport, currency string) error {
	fmt.Fprintf(w, "Balance sheet as of %s\n\n", dto.FormatDate(r.AsOf))
	tw := newTable(w)
	writeSection(tw, "Assets", r.Assets, r.TotalAssets, currency)
	writeSection(tw, "Liabilities", r.Liabilities, r.TotalLiabilities, currency)
	equityAccounts := r.TotalEquity.Sub(r.CurrentEarnings)
	writeSection(tw, "Equity", r.Equity, equityAccounts, currency)
	fmt.Fprintf(tw, "\tCurrent earnings\t%s\t\n", utils.FormatMoney(r.CurrentEarnings, currency))
	fmt.Fprintf(tw, "\tLiabilities and equity\t%s\t\n", utils.FormatMoney(r.TotalLiabilitiesAndEquity, currency))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", balancedLabel(r.Balanced))
	return err
}
