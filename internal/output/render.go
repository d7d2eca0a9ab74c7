package output

import (
	"github.com/finwise/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// RenderedEntry is a result entry ready for display
type RenderedEntry struct {
	Title       string `json:"title" yaml:"title"`
	Value       string `json:"value" yaml:"value"`
	Compact     string `json:"compact" yaml:"compact"`
	Amount      string `json:"amount" yaml:"amount"`
	Description string `json:"description" yaml:"description"`
}

// RenderedResult pairs a calculator with its display entries
type RenderedResult struct {
	Calculator domain.CalculatorKind `json:"calculator" yaml:"calculator"`
	Entries    []RenderedEntry       `json:"entries" yaml:"entries"`
}

// Render formats every entry of a result in order. Amount keeps two decimals
// for clients that do their own formatting.
func Render(result *domain.CalculationResult) RenderedResult {
	if result == nil {
		return RenderedResult{}
	}
	out := RenderedResult{Calculator: result.Calculator, Entries: make([]RenderedEntry, 0, len(result.Entries))}
	for _, e := range result.Entries {
		out.Entries = append(out.Entries, RenderedEntry{
			Title:       e.Title,
			Value:       FormatEntryValue(e),
			Compact:     FormatCompact(e.Amount),
			Amount:      e.Amount.StringFixed(2),
			Description: e.Description,
		})
	}
	return out
}

// RenderedItem is a batch item ready for display
type RenderedItem struct {
	Name       string                `json:"name" yaml:"name"`
	Calculator domain.CalculatorKind `json:"calculator" yaml:"calculator"`
	Entries    []RenderedEntry       `json:"entries,omitempty" yaml:"entries,omitempty"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
	Field      string                `json:"field,omitempty" yaml:"field,omitempty"`
	Rates      []RenderedRate        `json:"rates,omitempty" yaml:"rates,omitempty"`
}

// RenderedRate is a percentage assumption ready for display
type RenderedRate struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

func renderRates(rates []domain.RateAssumption) []RenderedRate {
	if len(rates) == 0 {
		return nil
	}
	out := make([]RenderedRate, 0, len(rates))
	for _, r := range rates {
		out = append(out, RenderedRate{Label: r.Label, Value: FormatPercentage(decimal.NewFromFloat(r.Percent))})
	}
	return out
}

// RenderBatch formats every item of a report in order
func RenderBatch(report *domain.BatchReport) []RenderedItem {
	items := make([]RenderedItem, 0, len(report.Items))
	for _, it := range report.Items {
		items = append(items, RenderedItem{
			Name:       it.Name,
			Calculator: it.Calculator,
			Entries:    Render(it.Result).Entries,
			Error:      it.Error,
			Field:      it.Field,
			Rates:      renderRates(it.Rates),
		})
	}
	return items
}
