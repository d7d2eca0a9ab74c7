package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func money(s string) Money {
	return NewMoneyFromDecimal(stddec.RequireFromString(s))
}

func TestNewMoneyFromDecimal(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}
	if m.String() != "10.13" { // rounded for display
		t.Fatalf("display mismatch: got %s", m.String())
	}
}

func TestGroupIndian(t *testing.T) {
	cases := []struct{ in, out string }{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"12345678", "1,23,45,678"},
		{"123456789", "12,34,56,789"},
	}
	for _, c := range cases {
		if got := GroupIndian(c.in); got != c.out {
			t.Errorf("GroupIndian(%s) = %s, want %s", c.in, got, c.out)
		}
	}
}

func TestRupees(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "₹0"},
		{"1161695.3817597027", "₹11,61,695"},
		{"600000", "₹6,00,000"},
		{"4339.5", "₹4,340"},
		{"-1234.4", "-₹1,234"},
		{"-0.001", "₹0"},
	}
	for _, c := range cases {
		m := money(c.in)
		if got := m.Rupees(); got != c.out {
			t.Errorf("Rupees(%s) = %s, want %s", c.in, got, c.out)
		}
	}
}

func TestCroresAndCompact(t *testing.T) {
	corpus := money("86152367.59369887")
	if got := corpus.Crores(1); got != "₹8.6 Cr" {
		t.Fatalf("Crores got %s", got)
	}

	cases := []struct{ in, out string }{
		{"500", "₹500"},
		{"100000", "₹1 L"},
		{"1161695.38", "₹11.62 L"},
		{"10000000", "₹1 Cr"},
		{"86152367.59", "₹8.62 Cr"},
	}
	for _, c := range cases {
		m := money(c.in)
		if got := m.Compact(); got != c.out {
			t.Errorf("Compact(%s) = %s, want %s", c.in, got, c.out)
		}
	}
}
