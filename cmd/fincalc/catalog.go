package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finwise/fincalc/internal/domain"
)

func newCatalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the calculators and their inputs",
		Args:  cobra.NoArgs,
		// the catalog is static; skip config loading
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			catalog := domain.Catalog()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}
			for _, c := range catalog {
				fmt.Fprintf(out, "%s (%s)\n  %s\n", c.Name, c.Kind, c.Description)
				for _, f := range c.Fields {
					fmt.Fprintf(out, "    %-24s %-32s default %g\n", f.Key, f.Label, f.Default)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}
