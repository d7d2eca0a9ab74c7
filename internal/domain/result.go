package domain

import (
	"github.com/shopspring/decimal"
)

// DisplayStyle tells the presentation layer how to render an amount
type DisplayStyle string

const (
	// DisplayRupees renders a whole-rupee amount with Indian digit grouping
	DisplayRupees DisplayStyle = "rupees"
	// DisplayCrores renders the amount in crores with one decimal place
	DisplayCrores DisplayStyle = "crores"
)

// ResultEntry is one labeled line of a calculation result
type ResultEntry struct {
	Title       string          `json:"title" yaml:"title"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Display     DisplayStyle    `json:"display" yaml:"display"`
	Description string          `json:"description" yaml:"description"`
}

// CalculationResult is the ordered, labeled output of a calculator. The
// primary result is always first.
type CalculationResult struct {
	Calculator CalculatorKind `json:"calculator" yaml:"calculator"`
	Entries    []ResultEntry  `json:"entries" yaml:"entries"`
}

// Primary returns the headline entry
func (r *CalculationResult) Primary() ResultEntry {
	if r == nil || len(r.Entries) == 0 {
		return ResultEntry{}
	}
	return r.Entries[0]
}

// SIPResult holds the projected outcome of a SIP
type SIPResult struct {
	MaturityAmount  decimal.Decimal `json:"maturity_amount"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TotalGains      decimal.Decimal `json:"total_gains"`
}

// Entries projects the result to its display order
func (r SIPResult) Entries() []ResultEntry {
	return []ResultEntry{
		{Title: "Maturity Amount", Amount: r.MaturityAmount, Display: DisplayRupees, Description: "Total amount at maturity"},
		{Title: "Total Investment", Amount: r.TotalInvestment, Display: DisplayRupees, Description: "Amount you invested"},
		{Title: "Total Gains", Amount: r.TotalGains, Display: DisplayRupees, Description: "Wealth gained through SIP"},
	}
}

// EMIResult holds the repayment summary of a loan
type EMIResult struct {
	EMI           decimal.Decimal `json:"emi"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

func (r EMIResult) Entries() []ResultEntry {
	return []ResultEntry{
		{Title: "Monthly EMI", Amount: r.EMI, Display: DisplayRupees, Description: "Amount to pay every month"},
		{Title: "Total Amount", Amount: r.TotalAmount, Display: DisplayRupees, Description: "Total amount payable"},
		{Title: "Total Interest", Amount: r.TotalInterest, Display: DisplayRupees, Description: "Interest paid over tenure"},
	}
}

// PPFResult holds the maturity projection of a PPF account
type PPFResult struct {
	MaturityAmount  decimal.Decimal `json:"maturity_amount"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TaxFreeGains    decimal.Decimal `json:"tax_free_gains"`
}

func (r PPFResult) Entries() []ResultEntry {
	return []ResultEntry{
		{Title: "Maturity Amount", Amount: r.MaturityAmount, Display: DisplayRupees, Description: "Amount after 15 years"},
		{Title: "Total Investment", Amount: r.TotalInvestment, Display: DisplayRupees, Description: "Total invested over 15 years"},
		{Title: "Tax-Free Gains", Amount: r.TaxFreeGains, Display: DisplayRupees, Description: "Tax-free wealth created"},
	}
}

// RetirementResult holds the corpus plan for retirement
type RetirementResult struct {
	RequiredCorpus       decimal.Decimal `json:"required_corpus"`
	MonthlySIPNeeded     decimal.Decimal `json:"monthly_sip_needed"`
	FutureMonthlyExpense decimal.Decimal `json:"future_monthly_expense"`
}

func (r RetirementResult) Entries() []ResultEntry {
	return []ResultEntry{
		{Title: "Required Corpus", Amount: r.RequiredCorpus, Display: DisplayCrores, Description: "Corpus needed at retirement"},
		{Title: "Monthly SIP Needed", Amount: r.MonthlySIPNeeded, Display: DisplayRupees, Description: "SIP amount to achieve goal"},
		{Title: "Future Monthly Expense", Amount: r.FutureMonthlyExpense, Display: DisplayRupees, Description: "Expenses adjusted for inflation"},
	}
}

// AmortizationYear aggregates one year of loan repayments
type AmortizationYear struct {
	Year           int             `json:"year" yaml:"year"`
	Payments       int             `json:"payments" yaml:"payments"`
	PrincipalPaid  decimal.Decimal `json:"principal_paid" yaml:"principal_paid"`
	InterestPaid   decimal.Decimal `json:"interest_paid" yaml:"interest_paid"`
	ClosingBalance decimal.Decimal `json:"closing_balance" yaml:"closing_balance"`
}

// PPFYear is one year of a PPF account ledger
type PPFYear struct {
	Year           int             `json:"year" yaml:"year"`
	Contribution   decimal.Decimal `json:"contribution" yaml:"contribution"`
	Interest       decimal.Decimal `json:"interest" yaml:"interest"`
	ClosingBalance decimal.Decimal `json:"closing_balance" yaml:"closing_balance"`
}

// BatchItem is the outcome of one request in a batch run
type BatchItem struct {
	Name       string             `json:"name" yaml:"name"`
	Calculator CalculatorKind     `json:"calculator" yaml:"calculator"`
	Result     *CalculationResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error      string             `json:"error,omitempty" yaml:"error,omitempty"`
	Field      string             `json:"field,omitempty" yaml:"field,omitempty"`
	Rates      []RateAssumption   `json:"rates,omitempty" yaml:"rates,omitempty"`
}

// Failed reports whether the item was rejected
func (b BatchItem) Failed() bool { return b.Error != "" }

// BatchReport holds batch outcomes in request order
type BatchReport struct {
	Items []BatchItem `json:"items" yaml:"items"`
}

// FailedCount returns how many items were rejected
func (r *BatchReport) FailedCount() int {
	n := 0
	for _, it := range r.Items {
		if it.Failed() {
			n++
		}
	}
	return n
}
