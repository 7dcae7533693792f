// SPDX-License-Identifier: MIT

package det

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/laplace/matrix"
)

// Compute returns the determinant of m together with its full derivation.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square, order 3..5, finite entries).
//   - Stage 2: order 3 resolves through the closed six-term rule; orders 4
//     and 5 expand along the first row, recursing until order 3.
//
// Behavior highlights:
//   - The trace order is fixed: columns 0..K-1 at every level.
//   - The input is copied; later changes to m do not affect the Result.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrUnsupportedOrder,
//     matrix.ErrNaNInf (all matchable with errors.Is).
//
// Complexity:
//   - Time O(K!) for order K; 5! = 120 closed-form evaluations at most.
func Compute(m matrix.Matrix, opts ...Option) (*Result, error) {
	o, err := OrderOf(m)
	if err != nil {
		return nil, detErrorf(opCompute, err)
	}
	if err = matrix.ValidateFinite(m); err != nil {
		return nil, detErrorf(opCompute, err)
	}
	d, err := matrix.AsDense(m.Clone())
	if err != nil {
		return nil, detErrorf(opCompute, err)
	}

	e := &expander{opts: gatherOptions(opts...)}
	res := e.resolve(d, e.opts.label, 0)
	e.opts.logger.Debug("determinant computed",
		zap.Stringer("order", o),
		zap.Float64("det", res.Value),
	)

	return res, nil
}
