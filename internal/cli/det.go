package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/laplace/det"
	"github.com/katalvlaran/laplace/matrix"
)

func parsePace(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --pace %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid --pace %q: must be >= 0", s)
	}

	return d, nil
}

func (a *app) detCmd() *cobra.Command {
	var rows []string

	cmd := &cobra.Command{
		Use:   "det",
		Short: "Compute the determinant of a 3x3, 4x4 or 5x5 matrix",
		Long: `Compute a determinant by cofactor expansion along the first row.
Pass one --row per matrix row; values are separated by spaces or commas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matrix.ParseGrid(rows)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Matrix:\n%s\n\n", matrix.Format(m))

			res, err := det.Compute(m,
				det.WithLogger(a.logger),
				det.WithPace(a.cfg.Engine.Pace),
				det.WithObserver(a.progress),
			)
			if err != nil {
				return err
			}

			if a.cfg.Engine.Trace {
				fmt.Fprint(out, res.Text())
				return nil
			}
			fmt.Fprintf(out, "Final determinant: %s\n", matrix.FormatScalar(res.Value))

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&rows, "row", "r", nil, "matrix row, repeat once per row")
	_ = cmd.MarkFlagRequired("row")

	return cmd
}

// progress stands in for the cell highlighting of an interactive front end.
func (a *app) progress(col int, partial []det.ExpansionStep) {
	st := partial[len(partial)-1]
	var running float64
	for _, p := range partial {
		running += p.Contribution
	}
	a.logger.Info("column expanded",
		zap.Int("column", col+1),
		zap.Float64("pivot", st.Pivot.Value),
		zap.Float64("contribution", st.Contribution),
		zap.Float64("running_total", running),
	)
}
