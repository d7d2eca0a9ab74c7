package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finwise/fincalc/internal/domain"
)

// CSVDetailedExporter writes one row per result entry, keeping entry order.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Calculator", "Position", "Title", "Amount", "Display", "Description"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, item := range report.Items {
		if item.Result == nil {
			continue
		}
		for i, e := range item.Result.Entries {
			row := []string{
				item.Name,
				item.Calculator.String(),
				intToString(i + 1),
				e.Title,
				e.Amount.StringFixed(2),
				FormatEntryValue(e),
				e.Description,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
