// fincalc computes SIP, EMI, PPF and retirement projections from the command
// line and serves them over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finwise/fincalc/internal/cache"
	"github.com/finwise/fincalc/internal/config"
	"github.com/finwise/fincalc/internal/logging"
	"github.com/finwise/fincalc/internal/service"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// app holds what PersistentPreRunE builds for the subcommands
type app struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	store  cache.Store
	svc    *service.CalculatorService
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fincalc",
		Short: "fincalc: SIP, EMI, PPF and retirement calculators",
		Long: `fincalc projects the outcome of common Indian personal-finance decisions:
systematic investment plans, loan EMIs, Public Provident Fund deposits and
retirement corpus planning. Results print to the console or are served as a
JSON and WebSocket API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.PersistentFlags().String("config", "", "config file path (defaults and FINCALC_* environment when empty)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSIPCmd(a))
	root.AddCommand(newEMICmd(a))
	root.AddCommand(newPPFCmd(a))
	root.AddCommand(newRetirementCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newServeCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")

	cfg, err := config.LoadAppConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := cache.New(cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store
	a.svc = service.New(
		service.WithCache(store),
		service.WithLogger(logger),
		service.WithBatchConcurrency(cfg.Batch.Concurrency),
	)
	return nil
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// skip config loading
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fincalc %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}
