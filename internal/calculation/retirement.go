package calculation

import (
	"math"

	"github.com/finwise/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// RetirementYears is the assumed post-retirement withdrawal window. The
// corpus is undiscounted: no return or inflation during withdrawal.
const RetirementYears = 25

// ComputeRetirement sizes the corpus needed at retirement and the monthly SIP
// that reaches it.
func ComputeRetirement(in domain.RetirementInput) (domain.RetirementResult, error) {
	if err := requireWholeAge("current_age", in.CurrentAge); err != nil {
		return domain.RetirementResult{}, err
	}
	if err := requireWholeAge("retirement_age", in.RetirementAge); err != nil {
		return domain.RetirementResult{}, err
	}
	if in.RetirementAge <= in.CurrentAge {
		return domain.RetirementResult{}, domain.NewInvalidInput("retirement_age", "must be greater than current_age")
	}
	if (in.RetirementAge-in.CurrentAge)*monthsPerYear >= math.MaxInt64 {
		return domain.RetirementResult{}, domain.NewInvalidInput("retirement_age", "is too far from current_age to count in months")
	}
	if err := requireNonNegative("monthly_expenses", in.MonthlyExpenses); err != nil {
		return domain.RetirementResult{}, err
	}
	if err := requireNonNegative("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return domain.RetirementResult{}, err
	}
	if err := requireNonNegative("inflation_rate_percent", in.InflationRatePercent); err != nil {
		return domain.RetirementResult{}, err
	}

	years := int64(in.RetirementAge - in.CurrentAge)
	months := years * monthsPerYear

	expenses := decimal.NewFromFloat(in.MonthlyExpenses)
	futureExpense := expenses.Mul(growthFactor(annualRate(in.InflationRatePercent), years))
	corpus := futureExpense.Mul(decimal.NewFromInt(monthsPerYear * RetirementYears))

	r := monthlyRate(in.AnnualRatePercent)
	var sip decimal.Decimal
	if r.IsZero() {
		sip = corpus.Div(decimal.NewFromInt(months))
	} else {
		sip = corpus.Mul(r).Div(growthFactor(r, months).Sub(one))
	}

	return domain.RetirementResult{
		RequiredCorpus:       corpus,
		MonthlySIPNeeded:     sip,
		FutureMonthlyExpense: futureExpense,
	}, nil
}
