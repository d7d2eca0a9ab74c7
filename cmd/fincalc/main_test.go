package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestSIPCommandDefaults(t *testing.T) {
	out, err := run(t, "sip")
	require.NoError(t, err)
	assert.Contains(t, out, "SIP [sip]")
	assert.Contains(t, out, "₹11,61,695")
	assert.Contains(t, out, "₹6,00,000")
}

func TestEMICommandWithSchedule(t *testing.T) {
	out, err := run(t, "emi", "--loan-amount", "18000", "--rate", "0", "--tenure", "1.5", "--schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly EMI")
	assert.Contains(t, out, "₹1,000")
	assert.Contains(t, out, "Payments")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "2 "), lines[len(lines)-1])
}

func TestPPFCommandLedger(t *testing.T) {
	out, err := run(t, "ppf", "--schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Tax-Free Gains")
	assert.Contains(t, out, "₹1,60,650")
}

func TestRetirementCommandJSON(t *testing.T) {
	out, err := run(t, "retirement", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "₹8.6 Cr"`)
}

func TestCalculatorCommandRejectsInvalidInput(t *testing.T) {
	_, err := run(t, "retirement", "--current-age", "60", "--retirement-age", "55")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input retirement_age")

	_, err = run(t, "sip", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "requests.yaml")
	content := "calculations:\n" +
		"  - name: Equity\n" +
		"    calculator: sip\n" +
		"    sip: {monthly_amount: 5000, annual_rate_percent: 12, years: 10}\n" +
		"  - name: Broken\n" +
		"    calculator: emi\n" +
		"    emi: {loan_amount: 0, annual_rate_percent: 8.5, tenure_years: 20}\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	out, err := run(t, "batch", "--file", file, "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Equity,sip,"))
	assert.True(t, strings.HasPrefix(lines[2], "Broken,emi,"))

	_, err = run(t, "batch", "--file", file, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 calculations were rejected")

	report := filepath.Join(dir, "report.html")
	_, err = run(t, "batch", "--file", file, "--format", "html", "-o", report)
	require.NoError(t, err)
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Financial Calculation Report")

	_, err = run(t, "batch", "--file", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCatalogAndVersion(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "SIP Calculator (sip)")
	assert.Contains(t, out, "Retirement Planner (retirement)")

	out, err = run(t, "catalog", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "emi"`)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fincalc dev")
}
