// SPDX-License-Identifier: MIT

package det

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/laplace/matrix"
)

// expandRow is the row every expansion runs along.
const expandRow = 0

// cofactorSign returns +1 for even columns and -1 for odd ones.
func cofactorSign(col int) int {
	if col%2 == 0 {
		return 1
	}

	return -1
}

// minorLabel names the minor obtained by deleting the expansion row and col
// from the matrix called parent. Indices are shown one-based.
func minorLabel(parent string, col int) string {
	name := fmt.Sprintf("without row %d & column %d", expandRow+1, col+1)
	if parent == "" {
		return name
	}

	return parent + " > " + name
}

// expander carries the resolved options through one Compute call.
type expander struct {
	opts options
}

// resolve dispatches on the order tag: closed form at order 3, expansion above.
// d must be square with a supported order.
func (e *expander) resolve(d *matrix.Dense, label string, depth int) *Result {
	o := Order(d.Rows())
	if !o.Expands() {
		cf := closedForm(d, label)
		e.opts.logger.Debug("closed form resolved",
			zap.String("label", label),
			zap.Int("depth", depth),
			zap.Float64("det", cf.Value),
		)
		return &Result{Order: o, Label: label, Matrix: d, Value: cf.Value, Closed: cf}
	}

	return e.expand(d, o, label, depth)
}

// expand runs the first-row Laplace expansion of d.
//
// For col = 0..K-1, strictly in order:
//   - sign = +1 for even col, -1 for odd col;
//   - minor = d without row 0 and column col;
//   - subDet = determinant of the minor (recursively);
//   - contribution = sign * d[0][col] * subDet, added to the running total.
//
// Only the outermost call (depth 0) notifies the observer and paces.
func (e *expander) expand(d *matrix.Dense, o Order, label string, depth int) *Result {
	k := int(o)
	res := &Result{Order: o, Label: label, Matrix: d, Steps: make([]ExpansionStep, 0, k)}

	var total float64
	for col := 0; col < k; col++ {
		pivot, _ := d.At(expandRow, col) // in range: col < k
		sign := cofactorSign(col)
		minor := matrix.Minor(d, expandRow, col)
		sub := e.resolve(minor, minorLabel(label, col), depth+1)
		contrib := float64(sign) * pivot * sub.Value

		res.Steps = append(res.Steps, ExpansionStep{
			Pivot:        Cell{Row: expandRow, Col: col, Value: pivot},
			Sign:         sign,
			Minor:        minor,
			MinorDet:     sub.Value,
			Contribution: contrib,
			Sub:          sub,
		})
		total += contrib

		e.opts.logger.Debug("cofactor step",
			zap.Int("depth", depth),
			zap.Int("order", k),
			zap.Int("col", col),
			zap.Int("sign", sign),
			zap.Float64("pivot", pivot),
			zap.Float64("minor_det", sub.Value),
			zap.Float64("contribution", contrib),
		)

		if depth == 0 {
			e.notify(col, res.Steps)
		}
	}
	res.Value = total

	return res
}

// notify hands the observer a copy of the partial trace, then pauses.
func (e *expander) notify(col int, steps []ExpansionStep) {
	if e.opts.observer != nil {
		partial := make([]ExpansionStep, len(steps))
		copy(partial, steps)
		e.opts.observer(col, partial)
	}
	if e.opts.pace > 0 {
		e.opts.sleep(e.opts.pace)
	}
}
