package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/finwise/fincalc/internal/domain"
)

// HTMLFormatter produces a standalone HTML report of the batch.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"add": func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Items      []RenderedItem
		Failed     int
		Total      int
		Highlights []Highlight
	}{RenderBatch(report), report.FailedCount(), len(report.Items), AnalyzeBatch(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
