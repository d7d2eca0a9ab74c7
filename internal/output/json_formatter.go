package output

import (
	"encoding/json"

	"github.com/finwise/fincalc/internal/domain"
)

// JSONFormatter serializes the batch report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	doc := struct {
		Items      []RenderedItem `json:"items"`
		Failed     int            `json:"failed"`
		Highlights []Highlight    `json:"highlights,omitempty"`
	}{RenderBatch(report), report.FailedCount(), AnalyzeBatch(report)}
	return json.MarshalIndent(doc, "", "  ")
}
