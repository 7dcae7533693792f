package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/laplace/matrix"
)

// binaryOp describes one of the two-operand matrix commands.
type binaryOp struct {
	use   string
	short string
	title string
	fn    func(a, b matrix.Matrix) (*matrix.Dense, error)
}

var binaryOps = []binaryOp{
	{use: "add", short: "Add two matrices (A + B)", title: "Matrix addition (A + B):", fn: matrix.Add},
	{use: "sub", short: "Subtract two matrices (A - B)", title: "Matrix subtraction (A - B):", fn: matrix.Sub},
	{use: "mul", short: "Multiply two matrices (A × B)", title: "Matrix multiplication (A × B):", fn: matrix.Mul},
}

func (a *app) binaryCmd(op binaryOp) *cobra.Command {
	var rowsA, rowsB []string

	cmd := &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ma, err := matrix.ParseGrid(rowsA)
			if err != nil {
				return fmt.Errorf("matrix A: %w", err)
			}
			mb, err := matrix.ParseGrid(rowsB)
			if err != nil {
				return fmt.Errorf("matrix B: %w", err)
			}

			res, err := op.fn(ma, mb)
			if err != nil {
				return err
			}
			a.logger.Debug("matrix operation",
				zap.String("op", op.use),
				zap.Int("rows", res.Rows()),
				zap.Int("cols", res.Cols()),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", op.title, matrix.Format(res))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&rowsA, "a", "a", nil, "row of matrix A, repeat once per row")
	cmd.Flags().StringArrayVarP(&rowsB, "b", "b", nil, "row of matrix B, repeat once per row")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}
