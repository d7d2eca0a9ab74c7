package domain

// InputField describes one form field of a calculator
type InputField struct {
	Key     string  `json:"key" yaml:"key"`
	Label   string  `json:"label" yaml:"label"`
	Help    string  `json:"help" yaml:"help"`
	Default float64 `json:"default" yaml:"default"`
	Step    float64 `json:"step,omitempty" yaml:"step,omitempty"`
}

// Calculator describes a calculator for menus and forms
type Calculator struct {
	Kind        CalculatorKind `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Fields      []InputField   `json:"fields" yaml:"fields"`
}

// DefaultSIPInput returns the values a fresh SIP form starts with
func DefaultSIPInput() SIPInput {
	return SIPInput{MonthlyAmount: 5000, AnnualRatePercent: 12, Years: 10}
}

// DefaultEMIInput returns the values a fresh EMI form starts with
func DefaultEMIInput() EMIInput {
	return EMIInput{LoanAmount: 500000, AnnualRatePercent: 8.5, TenureYears: 20}
}

// DefaultPPFInput returns the values a fresh PPF form starts with
func DefaultPPFInput() PPFInput {
	return PPFInput{YearlyInvestment: 150000, AnnualRatePercent: 7.1, CurrentAge: 30}
}

// DefaultRetirementInput returns the values a fresh retirement form starts with
func DefaultRetirementInput() RetirementInput {
	return RetirementInput{
		CurrentAge:           30,
		RetirementAge:        60,
		MonthlyExpenses:      50000,
		AnnualRatePercent:    10,
		InflationRatePercent: 6,
	}
}

// Catalog lists all calculators in display order
func Catalog() []Calculator {
	kinds := AllCalculatorKinds()
	out := make([]Calculator, 0, len(kinds))
	for _, k := range kinds {
		c, _ := DescribeCalculator(k)
		out = append(out, c)
	}
	return out
}

// DescribeCalculator returns the catalog entry for kind
func DescribeCalculator(kind CalculatorKind) (Calculator, bool) {
	switch kind {
	case KindSIP:
		d := DefaultSIPInput()
		return Calculator{
			Kind:        KindSIP,
			Name:        "SIP Calculator",
			Description: "Calculate returns from Systematic Investment Plans",
			Fields: []InputField{
				{Key: "monthly_amount", Label: "Monthly Investment Amount (₹)", Help: "Amount you plan to invest every month", Default: d.MonthlyAmount},
				{Key: "annual_rate_percent", Label: "Expected Annual Return (%)", Help: "Expected yearly return rate from your investment", Default: d.AnnualRatePercent, Step: 0.1},
				{Key: "years", Label: "Investment Period (Years)", Help: "How long you plan to continue the SIP", Default: d.Years},
			},
		}, true
	case KindEMI:
		d := DefaultEMIInput()
		return Calculator{
			Kind:        KindEMI,
			Name:        "EMI Calculator",
			Description: "Calculate your loan EMI and payment schedule",
			Fields: []InputField{
				{Key: "loan_amount", Label: "Loan Amount (₹)", Help: "Total loan amount you want to borrow", Default: d.LoanAmount},
				{Key: "annual_rate_percent", Label: "Interest Rate (% per annum)", Help: "Annual interest rate charged by the lender", Default: d.AnnualRatePercent, Step: 0.1},
				{Key: "tenure_years", Label: "Tenure (Years)", Help: "Duration for which you want to take the loan", Default: d.TenureYears},
			},
		}, true
	case KindPPF:
		d := DefaultPPFInput()
		return Calculator{
			Kind:        KindPPF,
			Name:        "PPF Calculator",
			Description: "Calculate Public Provident Fund maturity amount",
			Fields: []InputField{
				{Key: "yearly_investment", Label: "Yearly Investment (₹)", Help: "Amount you plan to invest annually (max ₹1.5 lakh)", Default: d.YearlyInvestment},
				{Key: "current_age", Label: "Current Age", Help: "Your current age in years", Default: d.CurrentAge},
				{Key: "annual_rate_percent", Label: "Expected Return Rate (%)", Help: "Current PPF interest rate is around 7.1%", Default: d.AnnualRatePercent, Step: 0.1},
			},
		}, true
	case KindRetirement:
		d := DefaultRetirementInput()
		return Calculator{
			Kind:        KindRetirement,
			Name:        "Retirement Planner",
			Description: "Plan your retirement corpus with inflation adjustment",
			Fields: []InputField{
				{Key: "current_age", Label: "Current Age", Help: "Your current age in years", Default: d.CurrentAge},
				{Key: "retirement_age", Label: "Retirement Age", Help: "Age at which you plan to retire", Default: d.RetirementAge},
				{Key: "monthly_expenses", Label: "Current Monthly Expenses (₹)", Help: "Your current monthly living expenses", Default: d.MonthlyExpenses},
				{Key: "annual_rate_percent", Label: "Expected Return (%)", Help: "Expected annual return from your investments", Default: d.AnnualRatePercent, Step: 0.1},
				{Key: "inflation_rate_percent", Label: "Inflation Rate (%)", Help: "Expected annual inflation rate (usually 5-7%)", Default: d.InflationRatePercent, Step: 0.1},
			},
		}, true
	}
	return Calculator{}, false
}
