package output

import (
	"github.com/finwise/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the rendered batch report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	doc := struct {
		Items  []RenderedItem `yaml:"items"`
		Failed int            `yaml:"failed"`
	}{RenderBatch(report), report.FailedCount()}
	return yaml.Marshal(doc)
}
