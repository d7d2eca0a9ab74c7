package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/finwise/fincalc/internal/domain"
)

// ConsoleFormatter prints each calculation as a labeled block, in request order.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL CALCULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, item := range RenderBatch(report) {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s [%s]\n", item.Name, item.Calculator)
		if item.Error != "" {
			fmt.Fprintf(&buf, "  ERROR: %s\n", item.Error)
			continue
		}
		writeEntries(&buf, item.Entries)
		writeRates(&buf, item.Rates)
	}
	if hl := AnalyzeBatch(report); len(hl) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Highlights:")
		for _, h := range hl {
			fmt.Fprintf(&buf, "  %s: %s (%s %s)\n", h.Calculator, h.Name, h.Metric, h.Value)
		}
	}
	if n := report.FailedCount(); n > 0 {
		fmt.Fprintf(&buf, "\n%d of %d calculations failed\n", n, len(report.Items))
	}
	return buf.Bytes(), nil
}

func writeEntries(buf *bytes.Buffer, entries []RenderedEntry) {
	width := 0
	for _, e := range entries {
		if len(e.Title) > width {
			width = len(e.Title)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(buf, "  %-*s  %s\n", width, e.Title, e.Value)
	}
}

func writeRates(buf *bytes.Buffer, rates []RenderedRate) {
	if len(rates) == 0 {
		return
	}
	parts := make([]string, 0, len(rates))
	for _, r := range rates {
		parts = append(parts, r.Label+" "+r.Value)
	}
	fmt.Fprintf(buf, "  Assumptions: %s\n", strings.Join(parts, ", "))
}
