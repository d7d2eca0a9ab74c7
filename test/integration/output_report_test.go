package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/finwise/fincalc/internal/config"
	"github.com/finwise/fincalc/internal/output"
	"github.com/finwise/fincalc/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	requests, err := config.NewInputParser().LoadFromFile(requestsFile)
	require.NoError(t, err)

	report, err := service.New(service.WithBatchConcurrency(2)).Batch(context.Background(), requests)
	require.NoError(t, err)

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, report, format))
			assert.Contains(t, buf.String(), "Equity SIP")
		})
	}

	var console bytes.Buffer
	require.NoError(t, output.GenerateReport(&console, report, "text"))
	content := console.String()
	assert.Contains(t, content, "₹11,61,695")
	assert.Contains(t, content, "₹8.6 Cr")
	assert.Contains(t, content, "Highlights:")
	assert.True(t, strings.Contains(content, "emi: Home loan (8.5%)"), content)
	assert.Contains(t, content, "1 of 7 calculations failed")
}
