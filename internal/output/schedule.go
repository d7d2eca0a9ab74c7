package output

import (
	"bytes"
	"fmt"

	"github.com/finwise/fincalc/internal/domain"
)

// FormatAmortization renders a yearly loan amortization table.
func FormatAmortization(rows []domain.AmortizationYear) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-6s %-9s %16s %16s %16s\n", "Year", "Payments", "Principal", "Interest", "Balance")
	for _, r := range rows {
		fmt.Fprintf(&buf, "%-6d %-9d %16s %16s %16s\n",
			r.Year, r.Payments,
			FormatCurrency(r.PrincipalPaid),
			FormatCurrency(r.InterestPaid),
			FormatCurrency(r.ClosingBalance))
	}
	return buf.String()
}

// FormatPPFLedger renders the yearly PPF account ledger.
func FormatPPFLedger(rows []domain.PPFYear) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-6s %16s %16s %16s\n", "Year", "Deposit", "Interest", "Balance")
	for _, r := range rows {
		fmt.Fprintf(&buf, "%-6d %16s %16s %16s\n",
			r.Year,
			FormatCurrency(r.Contribution),
			FormatCurrency(r.Interest),
			FormatCurrency(r.ClosingBalance))
	}
	return buf.String()
}
