// Package cli implements the algacheck command line.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/npillmayer/alga/lawcheck"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// ErrLawsViolated is returned by the root command if any law check failed.
var ErrLawsViolated = errors.New("algacheck: laws violated")

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "html"
	Color   string // "auto" | "always" | "never"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "html"}

// ValidColorModes defines the allowed values of the color flag.
var ValidColorModes = []string{"auto", "always", "never"}

// checkOptions holds the flags of the check run. Zero values leave the
// configuration from the environment untouched.
type checkOptions struct {
	samples int
	seed    int64
	workers int
	runID   string
}

// NewRootCommand creates the root command for algacheck. Run without a
// subcommand, it checks the laws of every registered structure.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	copts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "algacheck",
		Short: "Check the algebraic laws of registered structures",
		Long: `Check the monoid laws of every registered (type, operator) pair.

Each law is tried with random samples. Exact structures are checked for the
exact and the approximate laws, approximate structures for the approximate
laws only. Configuration is read from ALGA_* environment variables first and
may be overridden by flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if !slices.Contains(ValidColorModes, opts.Color) {
				return fmt.Errorf("invalid color mode %q: must be one of %v", opts.Color, ValidColorModes)
			}
			if opts.Verbose {
				tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
				tracer := tracing.Select("alga")
				tracer.SetOutput(cmd.ErrOrStderr())
				tracer.SetTraceLevel(tracing.LevelInfo)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, copts)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "trace law violations to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|html)")
	cmd.PersistentFlags().StringVar(&opts.Color, "color", "auto", "colorize text output (auto|always|never)")

	// Check flags
	cmd.Flags().IntVarP(&copts.samples, "samples", "n", 0, "samples per law (default from ALGA_SAMPLES or 1000)")
	cmd.Flags().Int64Var(&copts.seed, "seed", 0, "base seed (default from ALGA_SEED or 1)")
	cmd.Flags().IntVarP(&copts.workers, "workers", "w", 0, "concurrent checks (default from ALGA_WORKERS or 4)")
	cmd.Flags().StringVar(&copts.runID, "run-id", "", "identifier of the run (default a random UUID)")

	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

func runCheck(cmd *cobra.Command, opts *RootOptions, copts *checkOptions) error {
	cfg, err := lawcheck.ConfigFromEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples = copts.samples
	}
	if flags.Changed("seed") {
		cfg.Seed = copts.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = copts.workers
	}
	runID := copts.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	runner, err := lawcheck.NewRunner(cfg)
	if err != nil {
		return err
	}
	report, err := runner.Run(cmd.Context(), runID, lawcheck.PrimitiveChecks(cfg.Tolerance))
	if err != nil {
		return err
	}
	switch opts.Format {
	case "html":
		err = report.WriteHTML(cmd.OutOrStdout())
	default:
		err = report.WriteText(cmd.OutOrStdout(), lawcheck.TextOptions{Color: useColor(opts.Color)})
	}
	if err != nil {
		return err
	}
	if !report.Passed() {
		return fmt.Errorf("%w: %s", ErrLawsViolated, report.Summary())
	}
	return nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return lawcheck.ColorFromTerminal()
}
