package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finwise/fincalc/internal/config"
	"github.com/finwise/fincalc/internal/output"
)

func newBatchCmd(a *app) *cobra.Command {
	var file, format, outPath string
	var failOnInvalid bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every calculation listed in a YAML or JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.ValidateFormat(format); err != nil {
				return err
			}

			requests, err := config.NewInputParser().LoadFromFile(file)
			if err != nil {
				return err
			}

			report, err := a.svc.Batch(cmd.Context(), requests)
			if err != nil {
				return fmt.Errorf("batch failed: %w", err)
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}
			if err := output.GenerateReport(w, report, format); err != nil {
				return err
			}

			if failOnInvalid && report.FailedCount() > 0 {
				return fmt.Errorf("%d of %d calculations were rejected", report.FailedCount(), len(report.Items))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "requests file (YAML or JSON)")
	cmd.Flags().StringVar(&format, "format", "console", "output format (console, json, yaml, csv, detailed-csv, html)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&failOnInvalid, "strict", false, "exit non-zero when any calculation is rejected")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
