// SPDX-License-Identifier: MIT

package det

import "github.com/katalvlaran/laplace/matrix"

// Cell is a single matrix entry addressed by zero-based indices.
type Cell struct {
	Row   int
	Col   int
	Value float64
}

// Triple is one diagonal product of the closed 3×3 rule.
type Triple struct {
	Cells   [3]Cell
	Product float64
}

// ClosedForm is the derivation of a 3×3 determinant by the six-term rule.
// Positive holds a·e·i, b·f·g, c·d·h; Negative holds c·e·g, b·d·i, a·f·h.
type ClosedForm struct {
	Label    string
	Matrix   *matrix.Dense
	Positive [3]Triple
	Negative [3]Triple
	Value    float64
}

// ExpansionStep records one term of a first-row cofactor expansion.
type ExpansionStep struct {
	Pivot        Cell          // always on row 0
	Sign         int           // +1 for even columns, -1 for odd
	Minor        *matrix.Dense // matrix without row 0 and column Pivot.Col
	MinorDet     float64
	Contribution float64 // Sign * Pivot.Value * MinorDet
	Sub          *Result // derivation of MinorDet
}

// Result is the determinant of one matrix together with its derivation.
// Exactly one of Steps (orders 4 and 5) or Closed (order 3) is set.
// Results are never mutated after Compute returns them.
type Result struct {
	Order  Order
	Label  string
	Matrix *matrix.Dense
	Value  float64
	Steps  []ExpansionStep
	Closed *ClosedForm
}
