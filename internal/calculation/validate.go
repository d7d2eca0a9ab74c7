package calculation

import (
	"math"

	"github.com/finwise/fincalc/internal/domain"
)

func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.NewInvalidInput(field, "must be a finite number")
	}
	return nil
}

func requireNonNegative(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return domain.NewInvalidInput(field, "must not be negative")
	}
	return nil
}

func requirePositive(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return domain.NewInvalidInput(field, "must be positive")
	}
	return nil
}

// wholeMonths converts a duration in years to a whole number of monthly periods
func wholeMonths(field string, years float64) (int64, error) {
	if err := requirePositive(field, years); err != nil {
		return 0, err
	}
	months := years * monthsPerYear
	if months != math.Trunc(months) {
		return 0, domain.NewInvalidInput(field, "must cover a whole number of months")
	}
	// 2^63 is exactly representable; anything at or above it has no int64 month count
	if months >= math.MaxInt64 {
		return 0, domain.NewInvalidInput(field, "is too long to count in months")
	}
	return int64(months), nil
}

func requireWholeAge(field string, age float64) error {
	if err := requireNonNegative(field, age); err != nil {
		return err
	}
	if age != math.Trunc(age) {
		return domain.NewInvalidInput(field, "must be a whole number of years")
	}
	return nil
}
