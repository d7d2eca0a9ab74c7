package calculation

import (
	"github.com/finwise/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PPFTenureYears is the statutory lock-in period of a PPF account
const PPFTenureYears = 15

// PPFAnnualLimit is the statutory ceiling on yearly PPF deposits in rupees
var PPFAnnualLimit = decimal.NewFromInt(150000)

// ExceedsPPFLimit reports whether the yearly deposit is above PPFAnnualLimit.
// Such inputs are still computed as given.
func ExceedsPPFLimit(in domain.PPFInput) bool {
	return decimal.NewFromFloat(in.YearlyInvestment).GreaterThan(PPFAnnualLimit)
}

func validatePPF(in domain.PPFInput) error {
	if err := requireNonNegative("yearly_investment", in.YearlyInvestment); err != nil {
		return err
	}
	if err := requireNonNegative("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return err
	}
	return requireNonNegative("current_age", in.CurrentAge)
}

// ComputePPF projects PPF maturity with annual compounding. Each deposit is
// made at the start of its year, so the first grows for 15 years and the last
// for one. The fixed tenure keeps the balance exact, so it is rolled forward
// year by year rather than through growthFactor.
func ComputePPF(in domain.PPFInput) (domain.PPFResult, error) {
	if err := validatePPF(in); err != nil {
		return domain.PPFResult{}, err
	}

	yearly := decimal.NewFromFloat(in.YearlyInvestment)
	r := annualRate(in.AnnualRatePercent)

	growth := one.Add(r)
	maturity := decimal.Zero
	for i := 0; i < PPFTenureYears; i++ {
		maturity = maturity.Add(yearly).Mul(growth)
	}

	totalInvestment := yearly.Mul(decimal.NewFromInt(PPFTenureYears))
	return domain.PPFResult{
		MaturityAmount:  maturity,
		TotalInvestment: totalInvestment,
		TaxFreeGains:    maturity.Sub(totalInvestment),
	}, nil
}

// PPFLedger lists the account year by year. The closing balance of the last
// year equals ComputePPF's maturity amount.
func PPFLedger(in domain.PPFInput) ([]domain.PPFYear, error) {
	if err := validatePPF(in); err != nil {
		return nil, err
	}

	yearly := decimal.NewFromFloat(in.YearlyInvestment)
	r := annualRate(in.AnnualRatePercent)

	ledger := make([]domain.PPFYear, 0, PPFTenureYears)
	balance := decimal.Zero
	for year := 1; year <= PPFTenureYears; year++ {
		opening := balance.Add(yearly)
		interest := opening.Mul(r)
		balance = opening.Add(interest)
		ledger = append(ledger, domain.PPFYear{
			Year:           year,
			Contribution:   yearly,
			Interest:       interest,
			ClosingBalance: balance,
		})
	}
	return ledger, nil
}
