package config

import (
	"fmt"
	"os"

	"github.com/finwise/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// BatchFile is the document layout of a batch requests file
type BatchFile struct {
	Calculations []domain.CalculationRequest `yaml:"calculations" json:"calculations"`
}

// InputParser handles parsing of batch request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads calculation requests from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) ([]domain.CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a batch document. JSON is accepted as a YAML subset.
func (ip *InputParser) Parse(data []byte) ([]domain.CalculationRequest, error) {
	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBatch(&file); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return file.Calculations, nil
}

// ValidateBatch checks the structure of every request. Numeric inputs are
// left to the engine so that one bad value fails only its own item.
func (ip *InputParser) ValidateBatch(file *BatchFile) error {
	if len(file.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	for i := range file.Calculations {
		if err := ip.validateRequest(&file.Calculations[i]); err != nil {
			return fmt.Errorf("calculation %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateRequest normalizes the calculator id and checks the input block
func (ip *InputParser) validateRequest(req *domain.CalculationRequest) error {
	kind, err := domain.ParseCalculatorKind(string(req.Calculator))
	if err != nil {
		return err
	}
	req.Calculator = kind

	if !req.HasInput(kind) {
		return fmt.Errorf("%s input block is required", kind)
	}
	for _, other := range domain.AllCalculatorKinds() {
		if other != kind && req.HasInput(other) {
			return fmt.Errorf("unexpected %s input block for calculator %s", other, kind)
		}
	}
	return nil
}
