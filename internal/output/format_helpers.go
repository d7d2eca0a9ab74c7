package output

import (
	"github.com/finwise/fincalc/internal/domain"
	money "github.com/finwise/fincalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole rupees with Indian grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Rupees()
}

// FormatCrores formats a decimal in crores with one decimal place.
func FormatCrores(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Crores(1)
}

// FormatCompact formats a decimal in the largest Indian unit (L, Cr).
func FormatCompact(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Compact()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatEntryValue renders an entry according to its display style.
func FormatEntryValue(e domain.ResultEntry) string {
	if e.Display == domain.DisplayCrores {
		return FormatCrores(e.Amount)
	}
	return FormatCurrency(e.Amount)
}
