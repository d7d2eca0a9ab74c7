package calculation

import "github.com/shopspring/decimal"

const (
	monthsPerYear = 12

	// ratePrecision is the number of decimal places kept when a percentage
	// is turned into a fractional rate
	ratePrecision = 32

	// growthPrecision is the number of decimal places kept after every
	// multiplication inside growthFactor
	growthPrecision = 40
)

var (
	one          = decimal.NewFromInt(1)
	hundred      = decimal.NewFromInt(100)
	decimalMonth = decimal.NewFromInt(monthsPerYear)
)

// annualRate converts a percentage to a fractional annual rate
func annualRate(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).DivRound(hundred, ratePrecision)
}

// monthlyRate converts an annual percentage to a fractional monthly rate
func monthlyRate(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).DivRound(hundred.Mul(decimalMonth), ratePrecision)
}

// growthFactor returns (1+rate)^periods by square-and-multiply, rounding to
// growthPrecision places at each step. The result depends only on the inputs,
// and its fractional digits stay bounded however long the horizon is.
func growthFactor(rate decimal.Decimal, periods int64) decimal.Decimal {
	result := one
	base := one.Add(rate)
	for n := periods; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base).Round(growthPrecision)
		}
		if n > 1 {
			base = base.Mul(base).Round(growthPrecision)
		}
	}
	return result
}
