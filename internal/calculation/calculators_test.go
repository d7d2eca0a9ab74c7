package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/finwise/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSIP_ReferenceValues(t *testing.T) {
	res, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 12, Years: 10})
	require.NoError(t, err)

	// Annuity due: P * ((1+r)^n - 1) / r * (1+r) with r = 1%, n = 120
	r := 0.01
	want := 5000 * (math.Pow(1+r, 120) - 1) / r * (1 + r)
	assert.InDelta(t, want, res.MaturityAmount.InexactFloat64(), 1e-6)
	assert.InDelta(t, 1161695.38, res.MaturityAmount.InexactFloat64(), 0.01)
	assert.True(t, res.TotalInvestment.Equal(decimal.NewFromInt(600000)))
	assert.True(t, res.TotalGains.Equal(res.MaturityAmount.Sub(res.TotalInvestment)))
}

func TestComputeSIP_GainsIdentity(t *testing.T) {
	inputs := []domain.SIPInput{
		{MonthlyAmount: 1, AnnualRatePercent: 0.5, Years: 1},
		{MonthlyAmount: 2500, AnnualRatePercent: 8, Years: 7},
		{MonthlyAmount: 100000, AnnualRatePercent: 18.75, Years: 40},
		{MonthlyAmount: 0, AnnualRatePercent: 12, Years: 5},
		{MonthlyAmount: 999.99, AnnualRatePercent: 0, Years: 2.5},
	}
	for _, in := range inputs {
		res, err := ComputeSIP(in)
		require.NoError(t, err)
		assert.True(t, res.TotalGains.Equal(res.MaturityAmount.Sub(res.TotalInvestment)), "%+v", in)
	}
}

func TestComputeSIP_ZeroRate(t *testing.T) {
	res, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 0, Years: 10})
	require.NoError(t, err)
	assert.True(t, res.MaturityAmount.Equal(decimal.NewFromInt(600000)))
	assert.True(t, res.TotalGains.IsZero())
}

func TestComputeSIP_Monotonic(t *testing.T) {
	base := domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 12, Years: 10}
	baseRes, err := ComputeSIP(base)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   domain.SIPInput
	}{
		{"higher amount", domain.SIPInput{MonthlyAmount: 5001, AnnualRatePercent: 12, Years: 10}},
		{"higher rate", domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 12.1, Years: 10}},
		{"longer period", domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 12, Years: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeSIP(tt.in)
			require.NoError(t, err)
			assert.True(t, res.MaturityAmount.GreaterThan(baseRes.MaturityAmount))
		})
	}

	zeroRate, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 0, Years: 10})
	require.NoError(t, err)
	assert.True(t, baseRes.MaturityAmount.GreaterThan(zeroRate.MaturityAmount))
}

func TestComputeSIP_TinyRateStillGrows(t *testing.T) {
	zero, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 0, Years: 10})
	require.NoError(t, err)

	tiny, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 1e-15, Years: 10})
	require.NoError(t, err)
	assert.True(t, tiny.MaturityAmount.GreaterThan(zero.MaturityAmount), "got %s", tiny.MaturityAmount)
	assert.True(t, tiny.TotalGains.IsPositive())
}

func TestLongHorizons(t *testing.T) {
	t.Run("sip 150 years", func(t *testing.T) {
		res, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 1000, AnnualRatePercent: 12, Years: 150})
		require.NoError(t, err)
		assert.True(t, res.TotalInvestment.Equal(decimal.NewFromInt(1800000)))
		assert.True(t, res.MaturityAmount.GreaterThan(res.TotalInvestment))
		assert.True(t, res.TotalGains.Equal(res.MaturityAmount.Sub(res.TotalInvestment)))

		// 1000 * ((1.01^1800 - 1) / 0.01) * 1.01
		want := 1000 * (math.Pow(1.01, 1800) - 1) / 0.01 * 1.01
		assert.InEpsilon(t, want, res.MaturityAmount.InexactFloat64(), 1e-9)
	})

	t.Run("emi 120 years", func(t *testing.T) {
		res, err := ComputeEMI(domain.EMIInput{LoanAmount: 1000000, AnnualRatePercent: 9, TenureYears: 120})
		require.NoError(t, err)
		// over a very long tenure the installment approaches pure interest
		assert.True(t, res.EMI.GreaterThan(decimal.NewFromInt(7500)))
		assert.InDelta(t, 7500, res.EMI.InexactFloat64(), 0.5)
		assert.True(t, res.EMI.Mul(decimal.NewFromInt(1440)).Equal(res.TotalAmount))
	})

	t.Run("retirement gap 101 years", func(t *testing.T) {
		res, err := ComputeRetirement(domain.RetirementInput{
			CurrentAge:           0,
			RetirementAge:        101,
			MonthlyExpenses:      1000,
			AnnualRatePercent:    8,
			InflationRatePercent: 3,
		})
		require.NoError(t, err)
		assert.InEpsilon(t, 1000*math.Pow(1.03, 101), res.FutureMonthlyExpense.InexactFloat64(), 1e-9)
		assert.True(t, res.RequiredCorpus.Equal(res.FutureMonthlyExpense.Mul(decimal.NewFromInt(300))))
		assert.True(t, res.MonthlySIPNeeded.IsPositive())
	})
}

func TestGrowthFactor(t *testing.T) {
	rate := decimal.RequireFromString("0.01")

	exact := one.Add(rate).Pow(decimal.NewFromInt(120))
	got := growthFactor(rate, 120)
	assert.True(t, got.Sub(exact).Abs().LessThan(decimal.New(1, -35)), "got %s want %s", got, exact)
	assert.LessOrEqual(t, -got.Exponent(), int32(growthPrecision))

	assert.True(t, growthFactor(rate, 0).Equal(one))
	assert.True(t, growthFactor(rate, 1).Equal(decimal.RequireFromString("1.01")))

	long := growthFactor(rate, 1800)
	assert.LessOrEqual(t, -long.Exponent(), int32(growthPrecision))
	assert.Equal(t, long.String(), growthFactor(rate, 1800).String())
}

func TestComputeEMI_ReferenceValues(t *testing.T) {
	in := domain.EMIInput{LoanAmount: 500000, AnnualRatePercent: 8.5, TenureYears: 20}
	res, err := ComputeEMI(in)
	require.NoError(t, err)

	assert.InDelta(t, 4339.116166827671, res.EMI.InexactFloat64(), 1e-6)
	assert.True(t, res.EMI.Mul(decimal.NewFromInt(240)).Equal(res.TotalAmount))
	assert.True(t, res.TotalAmount.Sub(decimal.NewFromInt(500000)).Equal(res.TotalInterest))
	assert.InDelta(t, 541387.88, res.TotalInterest.InexactFloat64(), 0.01)
}

func TestComputeEMI_ZeroRate(t *testing.T) {
	res, err := ComputeEMI(domain.EMIInput{LoanAmount: 120000, AnnualRatePercent: 0, TenureYears: 1})
	require.NoError(t, err)
	assert.True(t, res.EMI.Equal(decimal.NewFromInt(10000)))
	assert.True(t, res.TotalAmount.Equal(decimal.NewFromInt(120000)))
	assert.True(t, res.TotalInterest.IsZero())
}

func TestComputePPF_MatchesTermByTermSum(t *testing.T) {
	res, err := ComputePPF(domain.PPFInput{YearlyInvestment: 150000, AnnualRatePercent: 7.1, CurrentAge: 30})
	require.NoError(t, err)

	// Brute-force reference: each deposit compounded year by year
	factor := decimal.RequireFromString("1.071")
	deposit := decimal.NewFromInt(150000)
	want := decimal.Zero
	for i := 0; i < 15; i++ {
		term := deposit
		for y := 0; y < 15-i; y++ {
			term = term.Mul(factor)
		}
		want = want.Add(term)
	}

	assert.True(t, res.MaturityAmount.Equal(want), "got %s want %s", res.MaturityAmount, want)
	assert.InDelta(t, 4068209.22, res.MaturityAmount.InexactFloat64(), 0.01)
	assert.True(t, res.TotalInvestment.Equal(decimal.NewFromInt(2250000)))
	assert.True(t, res.TaxFreeGains.Equal(res.MaturityAmount.Sub(res.TotalInvestment)))

	// The closed-form ordinary annuity gives a different (smaller) figure
	closedForm := 150000 * (math.Pow(1.071, 15) - 1) / 0.071
	assert.Greater(t, res.MaturityAmount.InexactFloat64(), closedForm)
}

func TestComputePPF_ZeroRate(t *testing.T) {
	res, err := ComputePPF(domain.PPFInput{YearlyInvestment: 1000, AnnualRatePercent: 0})
	require.NoError(t, err)
	assert.True(t, res.MaturityAmount.Equal(decimal.NewFromInt(15000)))
	assert.True(t, res.TaxFreeGains.IsZero())
}

func TestComputeRetirement_ReferenceValues(t *testing.T) {
	res, err := ComputeRetirement(domain.DefaultRetirementInput())
	require.NoError(t, err)

	wantFuture := decimal.NewFromInt(50000).Mul(decimal.RequireFromString("1.06").Pow(decimal.NewFromInt(30)))
	drift := res.FutureMonthlyExpense.Sub(wantFuture).Abs()
	assert.True(t, drift.LessThan(decimal.New(1, -30)), "got %s want %s", res.FutureMonthlyExpense, wantFuture)
	assert.True(t, res.RequiredCorpus.Equal(res.FutureMonthlyExpense.Mul(decimal.NewFromInt(300))))

	assert.InDelta(t, 287174.5586, res.FutureMonthlyExpense.InexactFloat64(), 1e-3)
	assert.InDelta(t, 86152367.59, res.RequiredCorpus.InexactFloat64(), 0.01)
	assert.InDelta(t, 38112.288, res.MonthlySIPNeeded.InexactFloat64(), 0.01)
}

func TestComputeRetirement_ZeroReturn(t *testing.T) {
	res, err := ComputeRetirement(domain.RetirementInput{
		CurrentAge:           40,
		RetirementAge:        50,
		MonthlyExpenses:      10000,
		AnnualRatePercent:    0,
		InflationRatePercent: 0,
	})
	require.NoError(t, err)
	assert.True(t, res.FutureMonthlyExpense.Equal(decimal.NewFromInt(10000)))
	assert.True(t, res.RequiredCorpus.Equal(decimal.NewFromInt(3000000)))
	assert.True(t, res.MonthlySIPNeeded.Equal(decimal.NewFromInt(25000)))
}

func TestComputeFunctionsArePure(t *testing.T) {
	sipIn := domain.DefaultSIPInput()
	a, err := ComputeSIP(sipIn)
	require.NoError(t, err)
	b, err := ComputeSIP(sipIn)
	require.NoError(t, err)
	assert.Equal(t, a.MaturityAmount.String(), b.MaturityAmount.String())

	emiIn := domain.DefaultEMIInput()
	e1, _ := ComputeEMI(emiIn)
	e2, _ := ComputeEMI(emiIn)
	assert.Equal(t, e1.EMI.String(), e2.EMI.String())

	ppfIn := domain.DefaultPPFInput()
	p1, _ := ComputePPF(ppfIn)
	p2, _ := ComputePPF(ppfIn)
	assert.Equal(t, p1.MaturityAmount.String(), p2.MaturityAmount.String())

	retIn := domain.DefaultRetirementInput()
	r1, _ := ComputeRetirement(retIn)
	r2, _ := ComputeRetirement(retIn)
	assert.Equal(t, r1.MonthlySIPNeeded.String(), r2.MonthlySIPNeeded.String())
}

func TestInvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		run   func() error
		field string
	}{
		{"sip NaN amount", func() error { _, err := ComputeSIP(domain.SIPInput{MonthlyAmount: math.NaN(), AnnualRatePercent: 12, Years: 10}); return err }, "monthly_amount"},
		{"sip negative amount", func() error { _, err := ComputeSIP(domain.SIPInput{MonthlyAmount: -1, AnnualRatePercent: 12, Years: 10}); return err }, "monthly_amount"},
		{"sip negative rate", func() error { _, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 1, AnnualRatePercent: -2, Years: 10}); return err }, "annual_rate_percent"},
		{"sip zero years", func() error { _, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 1, AnnualRatePercent: 12, Years: 0}); return err }, "years"},
		{"sip partial month", func() error { _, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 1, AnnualRatePercent: 12, Years: 1.01}); return err }, "years"},
		{"sip beyond int64 months", func() error { _, err := ComputeSIP(domain.SIPInput{MonthlyAmount: 1, AnnualRatePercent: 12, Years: 1e300}); return err }, "years"},
		{"emi zero loan", func() error { _, err := ComputeEMI(domain.EMIInput{LoanAmount: 0, AnnualRatePercent: 8, TenureYears: 5}); return err }, "loan_amount"},
		{"emi infinite rate", func() error { _, err := ComputeEMI(domain.EMIInput{LoanAmount: 10, AnnualRatePercent: math.Inf(1), TenureYears: 5}); return err }, "annual_rate_percent"},
		{"emi negative tenure", func() error { _, err := ComputeEMI(domain.EMIInput{LoanAmount: 10, AnnualRatePercent: 8, TenureYears: -5}); return err }, "tenure_years"},
		{"ppf negative deposit", func() error { _, err := ComputePPF(domain.PPFInput{YearlyInvestment: -1, AnnualRatePercent: 7.1}); return err }, "yearly_investment"},
		{"ppf NaN rate", func() error { _, err := ComputePPF(domain.PPFInput{YearlyInvestment: 1, AnnualRatePercent: math.NaN()}); return err }, "annual_rate_percent"},
		{"retirement equal ages", func() error {
			_, err := ComputeRetirement(domain.RetirementInput{CurrentAge: 60, RetirementAge: 60, MonthlyExpenses: 1, AnnualRatePercent: 10, InflationRatePercent: 6})
			return err
		}, "retirement_age"},
		{"retirement fractional age", func() error {
			_, err := ComputeRetirement(domain.RetirementInput{CurrentAge: 30.5, RetirementAge: 60, MonthlyExpenses: 1, AnnualRatePercent: 10, InflationRatePercent: 6})
			return err
		}, "current_age"},
		{"retirement negative inflation", func() error {
			_, err := ComputeRetirement(domain.RetirementInput{CurrentAge: 30, RetirementAge: 60, MonthlyExpenses: 1, AnnualRatePercent: 10, InflationRatePercent: -1})
			return err
		}, "inflation_rate_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			inv, ok := domain.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, inv.Field)
		})
	}
}
