// Package decimal wraps shopspring/decimal with rupee formatting helpers.
package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
)

// Money represents a rupee amount with arbitrary precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount with two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Rupees renders the amount rounded to whole rupees with Indian grouping (₹12,34,568)
func (m Money) Rupees() string {
	return m.sign() + "₹" + GroupIndian(m.Decimal.Abs().StringFixed(0))
}

// Crores renders the amount in crores with the given decimals (₹8.6 Cr)
func (m Money) Crores(places int32) string {
	return m.sign() + "₹" + m.Decimal.Abs().Div(crore).StringFixed(places) + " Cr"
}

// Compact picks the largest Indian unit for the amount (₹11.62 L, ₹8.62 Cr)
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	switch {
	case abs.GreaterThanOrEqual(crore):
		return m.sign() + "₹" + trimZeros(abs.Div(crore).StringFixed(2)) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return m.sign() + "₹" + trimZeros(abs.Div(lakh).StringFixed(2)) + " L"
	default:
		return m.Rupees()
	}
}

func (m Money) sign() string {
	if m.Decimal.Round(2).IsNegative() {
		return "-"
	}
	return ""
}

// GroupIndian inserts separators into a run of digits using the Indian system:
// the last three digits, then groups of two.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
