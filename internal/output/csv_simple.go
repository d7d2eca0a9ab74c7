package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finwise/fincalc/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per request).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Calculator", "PrimaryTitle", "PrimaryAmount", "PrimaryDisplay", "Failed", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, item := range report.Items {
		primary := item.Result.Primary()
		amount := ""
		display := ""
		if !item.Failed() {
			amount = primary.Amount.StringFixed(2)
			display = FormatEntryValue(primary)
		}
		row := []string{
			item.Name,
			item.Calculator.String(),
			primary.Title,
			amount,
			display,
			boolToString(item.Failed()),
			item.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
