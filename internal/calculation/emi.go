package calculation

import (
	"fmt"

	"github.com/finwise/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// schedulePrecision bounds the digits carried month to month in a schedule
	schedulePrecision = 12

	// MaxScheduleYears limits how many rows an amortization schedule may have.
	// ComputeEMI itself accepts any tenure.
	MaxScheduleYears = 1000
)

func validateEMI(in domain.EMIInput) (int64, error) {
	if err := requirePositive("loan_amount", in.LoanAmount); err != nil {
		return 0, err
	}
	if err := requireNonNegative("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return 0, err
	}
	return wholeMonths("tenure_years", in.TenureYears)
}

// ComputeEMI calculates the equated monthly installment of a loan using the
// standard amortization formula. A zero rate spreads the principal evenly.
func ComputeEMI(in domain.EMIInput) (domain.EMIResult, error) {
	months, err := validateEMI(in)
	if err != nil {
		return domain.EMIResult{}, err
	}

	principal := decimal.NewFromFloat(in.LoanAmount)
	r := monthlyRate(in.AnnualRatePercent)
	n := decimal.NewFromInt(months)

	var emi decimal.Decimal
	if r.IsZero() {
		emi = principal.Div(n)
	} else {
		growth := growthFactor(r, months)
		emi = principal.Mul(r).Mul(growth).Div(growth.Sub(one))
	}

	totalAmount := emi.Mul(n)
	return domain.EMIResult{
		EMI:           emi,
		TotalAmount:   totalAmount,
		TotalInterest: totalAmount.Sub(principal),
	}, nil
}

// AmortizationSchedule breaks the loan down by year. Interest accrues on the
// opening balance each month; the final installment retires whatever
// principal remains so the principal column always sums to the loan amount.
func AmortizationSchedule(in domain.EMIInput) ([]domain.AmortizationYear, error) {
	summary, err := ComputeEMI(in)
	if err != nil {
		return nil, err
	}
	if in.TenureYears > MaxScheduleYears {
		return nil, domain.NewInvalidInput("tenure_years", fmt.Sprintf("schedules cover at most %d years", MaxScheduleYears))
	}
	months, _ := validateEMI(in)

	r := monthlyRate(in.AnnualRatePercent)
	balance := decimal.NewFromFloat(in.LoanAmount)

	years := make([]domain.AmortizationYear, 0, (months+monthsPerYear-1)/monthsPerYear)
	var current domain.AmortizationYear
	for m := int64(1); m <= months; m++ {
		if current.Payments == 0 {
			current = domain.AmortizationYear{
				Year:          int((m-1)/monthsPerYear) + 1,
				PrincipalPaid: decimal.Zero,
				InterestPaid:  decimal.Zero,
			}
		}

		interest := balance.Mul(r).Round(schedulePrecision)
		principal := summary.EMI.Sub(interest)
		if m == months || principal.GreaterThan(balance) {
			principal = balance
		}
		balance = balance.Sub(principal)

		current.Payments++
		current.PrincipalPaid = current.PrincipalPaid.Add(principal)
		current.InterestPaid = current.InterestPaid.Add(interest)
		current.ClosingBalance = balance

		if current.Payments == monthsPerYear || m == months {
			years = append(years, current)
			current = domain.AmortizationYear{}
		}
	}
	return years, nil
}
