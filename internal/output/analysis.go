package output

import (
	"github.com/finwise/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Highlight names the standout request of one calculator kind within a batch.
type Highlight struct {
	Calculator domain.CalculatorKind `json:"calculator"`
	Name       string                `json:"name"`
	Metric     string                `json:"metric"`
	Amount     decimal.Decimal       `json:"amount"`
	Value      string                `json:"value"`
}

// AnalyzeBatch picks, per calculator kind with at least two successful items,
// the best primary figure: highest maturity for SIP and PPF, lowest EMI, and
// lowest monthly SIP for retirement plans. Ties keep the earlier item.
func AnalyzeBatch(report *domain.BatchReport) []Highlight {
	if report == nil {
		return nil
	}
	var out []Highlight
	for _, kind := range domain.AllCalculatorKinds() {
		var best *Highlight
		count := 0
		for _, item := range report.Items {
			if item.Failed() || item.Calculator != kind || item.Result == nil {
				continue
			}
			entry, ok := rankedEntry(kind, item.Result)
			if !ok {
				continue
			}
			count++
			if best == nil || better(kind, entry.Amount, best.Amount) {
				best = &Highlight{Calculator: kind, Name: item.Name, Metric: entry.Title, Amount: entry.Amount, Value: FormatEntryValue(entry)}
			}
		}
		if best != nil && count > 1 {
			out = append(out, *best)
		}
	}
	return out
}

func rankedEntry(kind domain.CalculatorKind, r *domain.CalculationResult) (domain.ResultEntry, bool) {
	idx := 0
	if kind == domain.KindRetirement {
		idx = 1
	}
	if idx >= len(r.Entries) {
		return domain.ResultEntry{}, false
	}
	return r.Entries[idx], true
}

func better(kind domain.CalculatorKind, candidate, current decimal.Decimal) bool {
	switch kind {
	case domain.KindEMI, domain.KindRetirement:
		return candidate.LessThan(current)
	default:
		return candidate.GreaterThan(current)
	}
}
