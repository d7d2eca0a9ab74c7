package config

import (
	"os"
	"testing"

	"github.com/finwise/fincalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", pattern)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "calculations:\n" +
		"  - name: \"Equity SIP\"\n" +
		"    calculator: sip\n" +
		"    sip:\n" +
		"      monthly_amount: 5000\n" +
		"      annual_rate_percent: 12\n" +
		"      years: 10\n" +
		"  - name: \"Home loan\"\n" +
		"    calculator: EMI\n" +
		"    emi:\n" +
		"      loan_amount: 500000\n" +
		"      annual_rate_percent: 8.5\n" +
		"      tenure_years: 20\n" +
		"  - calculator: retirement\n" +
		"    retirement:\n" +
		"      current_age: 30\n" +
		"      retirement_age: 60\n" +
		"      monthly_expenses: 50000\n" +
		"      annual_rate_percent: 10\n" +
		"      inflation_rate_percent: 6\n"

	path := writeTemp(t, "test_batch_*.yaml", testConfig)

	parser := NewInputParser()
	requests, err := parser.LoadFromFile(path)

	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "Equity SIP", requests[0].Name)
	assert.Equal(t, domain.KindSIP, requests[0].Calculator)
	assert.Equal(t, domain.DefaultSIPInput(), *requests[0].SIP)

	// calculator ids are normalized
	assert.Equal(t, domain.KindEMI, requests[1].Calculator)
	assert.Equal(t, 8.5, requests[1].EMI.AnnualRatePercent)

	assert.Equal(t, "retirement", requests[2].DisplayName())
	assert.Equal(t, domain.DefaultRetirementInput(), *requests[2].Retirement)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeTemp(t, "test_batch_*.json", `{"calculations":[{"calculator":"ppf","ppf":{"yearly_investment":150000,"annual_rate_percent":7.1}}]}`)

	requests, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, 150000.0, requests[0].PPF.YearlyInvestment)
	assert.Zero(t, requests[0].PPF.CurrentAge)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	requests, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, requests)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "test_invalid_*.yaml", "calculations: [\n  - name: broken\n")

	requests, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, requests)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty",
			content: "calculations: []\n",
			wantErr: "no calculations provided",
		},
		{
			name:    "unknown calculator",
			content: "calculations:\n  - calculator: fd\n",
			wantErr: "unknown calculator \"fd\"",
		},
		{
			name:    "missing block",
			content: "calculations:\n  - calculator: sip\n",
			wantErr: "sip input block is required",
		},
		{
			name: "extra block",
			content: "calculations:\n  - calculator: sip\n    sip:\n      monthly_amount: 1\n      years: 1\n" +
				"    emi:\n      loan_amount: 1\n      tenure_years: 1\n",
			wantErr: "unexpected emi input block for calculator sip",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "batch validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_NumericValidationDeferred(t *testing.T) {
	// negative amounts are rejected per item by the engine, not by the parser
	requests, err := NewInputParser().Parse([]byte("calculations:\n  - calculator: emi\n    emi:\n      loan_amount: -5\n      tenure_years: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, -5.0, requests[0].EMI.LoanAmount)
}
