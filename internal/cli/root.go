// Package cli wires the determinant engine and the matrix operations into a
// cobra command tree. It is a thin presentation layer: it parses cell text,
// calls into det and matrix, and prints what they return.
package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/laplace/internal/config"
	"github.com/katalvlaran/laplace/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

// app carries the per-invocation state shared by all subcommands.
type app struct {
	// global flags
	configPath string
	logLevel   string
	pace       string
	trace      bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the detcalc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "detcalc",
		Short: "Determinants by cofactor expansion and basic matrix arithmetic",
		Long: `detcalc computes determinants of 3x3, 4x4 and 5x5 matrices by expanding
along the first row down to the 3x3 rule of Sarrus, and adds, subtracts or
multiplies two matrices.

Cells that are not numbers are read as 0.

Example:
  detcalc det -r "1 2 3" -r "0 1 4" -r "5 6 0"
  detcalc det --trace --pace 400ms -r "2 0 1 3 4" -r "1 -1 0 2 1" -r "0 3 1 1 0" -r "4 1 2 0 1" -r "1 0 3 2 2"
  detcalc mul -a "1 2" -a "3 4" -b "5 6" -b "7 8"`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./detcalc.yaml if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.pace, "pace", "", "pause between expansion columns, e.g. 400ms")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false, "print the full derivation")

	root.AddCommand(a.detCmd())
	for _, op := range binaryOps {
		root.AddCommand(a.binaryCmd(op))
	}

	return root
}

// Execute runs the CLI with the given arguments and output streams.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("pace") {
		if cfg.Engine.Pace, err = parsePace(a.pace); err != nil {
			return err
		}
	}
	if flags.Changed("trace") {
		cfg.Engine.Trace = a.trace
	}
	if err = config.Validate(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("env", cfg.Env),
		zap.Duration("pace", cfg.Engine.Pace),
		zap.Bool("trace", cfg.Engine.Trace),
	)

	return nil
}
