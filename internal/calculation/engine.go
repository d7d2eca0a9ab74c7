package calculation

import (
	"fmt"

	"github.com/finwise/fincalc/internal/domain"
)

// CalculationEngine dispatches calculation requests to the four calculators.
// It holds no mutable state besides its logger and is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// ValidateRequest checks that the request names a known calculator and carries
// exactly the matching input block.
func ValidateRequest(req domain.CalculationRequest) error {
	if !req.Calculator.Valid() {
		return domain.NewInvalidInput("calculator", fmt.Sprintf("unknown calculator %q", req.Calculator))
	}

	if !req.HasInput(req.Calculator) {
		return domain.NewInvalidInput(string(req.Calculator), "input block is required")
	}
	for _, k := range domain.AllCalculatorKinds() {
		if k != req.Calculator && req.HasInput(k) {
			return domain.NewInvalidInput(string(k), fmt.Sprintf("unexpected input block for calculator %s", req.Calculator))
		}
	}
	return nil
}

// Calculate runs the calculator selected by the request
func (ce *CalculationEngine) Calculate(req domain.CalculationRequest) (*domain.CalculationResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	var entries []domain.ResultEntry
	switch req.Calculator {
	case domain.KindSIP:
		res, err := ComputeSIP(*req.SIP)
		if err != nil {
			return nil, err
		}
		ce.logger().Debugf("sip %q: maturity=%s invested=%s", req.DisplayName(), res.MaturityAmount.StringFixed(2), res.TotalInvestment.StringFixed(2))
		entries = res.Entries()
	case domain.KindEMI:
		res, err := ComputeEMI(*req.EMI)
		if err != nil {
			return nil, err
		}
		ce.logger().Debugf("emi %q: installment=%s interest=%s", req.DisplayName(), res.EMI.StringFixed(2), res.TotalInterest.StringFixed(2))
		entries = res.Entries()
	case domain.KindPPF:
		if ExceedsPPFLimit(*req.PPF) {
			ce.logger().Warnf("ppf %q: yearly investment %.2f exceeds the statutory limit of %s", req.DisplayName(), req.PPF.YearlyInvestment, PPFAnnualLimit.String())
		}
		res, err := ComputePPF(*req.PPF)
		if err != nil {
			return nil, err
		}
		ce.logger().Debugf("ppf %q: maturity=%s", req.DisplayName(), res.MaturityAmount.StringFixed(2))
		entries = res.Entries()
	case domain.KindRetirement:
		res, err := ComputeRetirement(*req.Retirement)
		if err != nil {
			return nil, err
		}
		ce.logger().Debugf("retirement %q: corpus=%s sip=%s", req.DisplayName(), res.RequiredCorpus.StringFixed(2), res.MonthlySIPNeeded.StringFixed(2))
		entries = res.Entries()
	}

	return &domain.CalculationResult{Calculator: req.Calculator, Entries: entries}, nil
}
