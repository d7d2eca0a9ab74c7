package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finwise/fincalc/internal/domain"
	"github.com/finwise/fincalc/internal/output"
)

// runSingle computes one request and prints it with the chosen formatter
func (a *app) runSingle(cmd *cobra.Command, req domain.CalculationRequest) error {
	format, _ := cmd.Flags().GetString("format")
	if err := output.ValidateFormat(format); err != nil {
		return err
	}

	result, err := a.svc.Calculate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Calculator, err)
	}

	report := &domain.BatchReport{Items: []domain.BatchItem{{
		Name:       req.DisplayName(),
		Calculator: req.Calculator,
		Result:     result,
		Rates:      req.Rates(),
	}}}
	return output.GenerateReport(cmd.OutOrStdout(), report, format)
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "console", "output format (console, json, yaml, csv, detailed-csv, html)")
}

func newSIPCmd(a *app) *cobra.Command {
	d := domain.DefaultSIPInput()
	var in domain.SIPInput
	var name string

	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Project the maturity of a monthly SIP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSingle(cmd, domain.NewSIPRequest(name, in))
		},
	}
	cmd.Flags().StringVar(&name, "name", "SIP", "label for the calculation")
	cmd.Flags().Float64Var(&in.MonthlyAmount, "monthly-amount", d.MonthlyAmount, "monthly investment amount (₹)")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", d.AnnualRatePercent, "expected annual return (%)")
	cmd.Flags().Float64Var(&in.Years, "years", d.Years, "investment period in years")
	addFormatFlag(cmd)
	return cmd
}

func newEMICmd(a *app) *cobra.Command {
	d := domain.DefaultEMIInput()
	var in domain.EMIInput
	var name string
	var schedule bool

	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Compute the monthly EMI of a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runSingle(cmd, domain.NewEMIRequest(name, in)); err != nil {
				return err
			}
			if !schedule {
				return nil
			}
			rows, err := a.svc.Amortization(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), output.FormatAmortization(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "Loan", "label for the calculation")
	cmd.Flags().Float64Var(&in.LoanAmount, "loan-amount", d.LoanAmount, "loan amount (₹)")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", d.AnnualRatePercent, "interest rate (% per annum)")
	cmd.Flags().Float64Var(&in.TenureYears, "tenure", d.TenureYears, "tenure in years")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the yearly amortization schedule")
	addFormatFlag(cmd)
	return cmd
}

func newPPFCmd(a *app) *cobra.Command {
	d := domain.DefaultPPFInput()
	var in domain.PPFInput
	var name string
	var schedule bool

	cmd := &cobra.Command{
		Use:   "ppf",
		Short: "Project the 15-year maturity of a PPF account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runSingle(cmd, domain.NewPPFRequest(name, in)); err != nil {
				return err
			}
			if !schedule {
				return nil
			}
			rows, err := a.svc.PPFLedger(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), output.FormatPPFLedger(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "PPF", "label for the calculation")
	cmd.Flags().Float64Var(&in.YearlyInvestment, "yearly-investment", d.YearlyInvestment, "yearly deposit (₹, max ₹1.5 lakh)")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", d.AnnualRatePercent, "PPF interest rate (%)")
	cmd.Flags().Float64Var(&in.CurrentAge, "age", d.CurrentAge, "current age in years")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the yearly account ledger")
	addFormatFlag(cmd)
	return cmd
}

func newRetirementCmd(a *app) *cobra.Command {
	d := domain.DefaultRetirementInput()
	var in domain.RetirementInput
	var name string

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Size the retirement corpus and the monthly SIP that reaches it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSingle(cmd, domain.NewRetirementRequest(name, in))
		},
	}
	cmd.Flags().StringVar(&name, "name", "Retirement", "label for the calculation")
	cmd.Flags().Float64Var(&in.CurrentAge, "current-age", d.CurrentAge, "current age in years")
	cmd.Flags().Float64Var(&in.RetirementAge, "retirement-age", d.RetirementAge, "planned retirement age")
	cmd.Flags().Float64Var(&in.MonthlyExpenses, "monthly-expenses", d.MonthlyExpenses, "current monthly expenses (₹)")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", d.AnnualRatePercent, "expected annual return (%)")
	cmd.Flags().Float64Var(&in.InflationRatePercent, "inflation", d.InflationRatePercent, "expected annual inflation (%)")
	addFormatFlag(cmd)
	return cmd
}
