package domain

import (
	"fmt"
	"strings"
)

// CalculatorKind identifies one of the supported calculators
type CalculatorKind string

const (
	KindSIP        CalculatorKind = "sip"
	KindEMI        CalculatorKind = "emi"
	KindPPF        CalculatorKind = "ppf"
	KindRetirement CalculatorKind = "retirement"
)

// AllCalculatorKinds returns every calculator kind in display order
func AllCalculatorKinds() []CalculatorKind {
	return []CalculatorKind{KindSIP, KindEMI, KindPPF, KindRetirement}
}

// ParseCalculatorKind resolves a user supplied identifier to a calculator kind
func ParseCalculatorKind(s string) (CalculatorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sip":
		return KindSIP, nil
	case "emi":
		return KindEMI, nil
	case "ppf":
		return KindPPF, nil
	case "retirement":
		return KindRetirement, nil
	default:
		return "", fmt.Errorf("unknown calculator %q: must be one of sip, emi, ppf, retirement", s)
	}
}

// Valid reports whether k is one of the known kinds
func (k CalculatorKind) Valid() bool {
	switch k {
	case KindSIP, KindEMI, KindPPF, KindRetirement:
		return true
	}
	return false
}

func (k CalculatorKind) String() string { return string(k) }

// SIPInput holds the parameters of a systematic investment plan projection
type SIPInput struct {
	MonthlyAmount     float64 `json:"monthly_amount" yaml:"monthly_amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	Years             float64 `json:"years" yaml:"years"`
}

// EMIInput holds the parameters of a loan repayment calculation
type EMIInput struct {
	LoanAmount        float64 `json:"loan_amount" yaml:"loan_amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	TenureYears       float64 `json:"tenure_years" yaml:"tenure_years"`
}

// PPFInput holds the parameters of a Public Provident Fund projection.
// CurrentAge is informational only; the tenure is fixed at 15 years.
type PPFInput struct {
	YearlyInvestment  float64 `json:"yearly_investment" yaml:"yearly_investment"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	CurrentAge        float64 `json:"current_age,omitempty" yaml:"current_age,omitempty"`
}

// RetirementInput holds the parameters of a retirement corpus plan
type RetirementInput struct {
	CurrentAge           float64 `json:"current_age" yaml:"current_age"`
	RetirementAge        float64 `json:"retirement_age" yaml:"retirement_age"`
	MonthlyExpenses      float64 `json:"monthly_expenses" yaml:"monthly_expenses"`
	AnnualRatePercent    float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	InflationRatePercent float64 `json:"inflation_rate_percent" yaml:"inflation_rate_percent"`
}

// CalculationRequest selects a calculator and carries its input. Exactly one
// input block, the one matching Calculator, must be set.
type CalculationRequest struct {
	Name       string           `json:"name,omitempty" yaml:"name,omitempty"`
	Calculator CalculatorKind   `json:"calculator" yaml:"calculator"`
	SIP        *SIPInput        `json:"sip,omitempty" yaml:"sip,omitempty"`
	EMI        *EMIInput        `json:"emi,omitempty" yaml:"emi,omitempty"`
	PPF        *PPFInput        `json:"ppf,omitempty" yaml:"ppf,omitempty"`
	Retirement *RetirementInput `json:"retirement,omitempty" yaml:"retirement,omitempty"`
}

// NewSIPRequest wraps a SIP input in a request
func NewSIPRequest(name string, in SIPInput) CalculationRequest {
	return CalculationRequest{Name: name, Calculator: KindSIP, SIP: &in}
}

// NewEMIRequest wraps an EMI input in a request
func NewEMIRequest(name string, in EMIInput) CalculationRequest {
	return CalculationRequest{Name: name, Calculator: KindEMI, EMI: &in}
}

// NewPPFRequest wraps a PPF input in a request
func NewPPFRequest(name string, in PPFInput) CalculationRequest {
	return CalculationRequest{Name: name, Calculator: KindPPF, PPF: &in}
}

// NewRetirementRequest wraps a retirement input in a request
func NewRetirementRequest(name string, in RetirementInput) CalculationRequest {
	return CalculationRequest{Name: name, Calculator: KindRetirement, Retirement: &in}
}

// HasInput reports whether the input block for kind is set
func (r CalculationRequest) HasInput(kind CalculatorKind) bool {
	switch kind {
	case KindSIP:
		return r.SIP != nil
	case KindEMI:
		return r.EMI != nil
	case KindPPF:
		return r.PPF != nil
	case KindRetirement:
		return r.Retirement != nil
	}
	return false
}

// DisplayName returns the request name, falling back to the calculator id
func (r CalculationRequest) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return string(r.Calculator)
}

// RateAssumption is a percentage input a calculation was run with
type RateAssumption struct {
	Label   string  `json:"label" yaml:"label"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Rates lists the percentage inputs of the request's active block
func (r CalculationRequest) Rates() []RateAssumption {
	switch {
	case r.Calculator == KindSIP && r.SIP != nil:
		return []RateAssumption{{"Expected Return", r.SIP.AnnualRatePercent}}
	case r.Calculator == KindEMI && r.EMI != nil:
		return []RateAssumption{{"Interest Rate", r.EMI.AnnualRatePercent}}
	case r.Calculator == KindPPF && r.PPF != nil:
		return []RateAssumption{{"Interest Rate", r.PPF.AnnualRatePercent}}
	case r.Calculator == KindRetirement && r.Retirement != nil:
		return []RateAssumption{
			{"Expected Return", r.Retirement.AnnualRatePercent},
			{"Inflation", r.Retirement.InflationRatePercent},
		}
	}
	return nil
}
