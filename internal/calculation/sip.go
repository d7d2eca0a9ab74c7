package calculation

import (
	"github.com/finwise/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeSIP projects the maturity of a monthly SIP. Contributions are made at
// the start of each month (annuity due); a zero rate degenerates to the sum of
// contributions.
func ComputeSIP(in domain.SIPInput) (domain.SIPResult, error) {
	if err := requireNonNegative("monthly_amount", in.MonthlyAmount); err != nil {
		return domain.SIPResult{}, err
	}
	if err := requireNonNegative("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return domain.SIPResult{}, err
	}
	months, err := wholeMonths("years", in.Years)
	if err != nil {
		return domain.SIPResult{}, err
	}

	amount := decimal.NewFromFloat(in.MonthlyAmount)
	r := monthlyRate(in.AnnualRatePercent)
	n := decimal.NewFromInt(months)

	totalInvestment := amount.Mul(n)
	maturity := totalInvestment
	if !r.IsZero() {
		growth := growthFactor(r, months)
		maturity = amount.Mul(growth.Sub(one).Div(r)).Mul(one.Add(r))
	}

	return domain.SIPResult{
		MaturityAmount:  maturity,
		TotalInvestment: totalInvestment,
		TotalGains:      maturity.Sub(totalInvestment),
	}, nil
}
