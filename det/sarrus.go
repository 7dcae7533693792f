// SPDX-License-Identifier: MIT

package det

import (
	"fmt"

	"github.com/katalvlaran/laplace/matrix"
)

// diagonal index triples of the closed 3×3 rule, row-major (a..i = 0..8).
var (
	positiveDiagonals = [3][3][2]int{
		{{0, 0}, {1, 1}, {2, 2}}, // a·e·i
		{{0, 1}, {1, 2}, {2, 0}}, // b·f·g
		{{0, 2}, {1, 0}, {2, 1}}, // c·d·h
	}
	negativeDiagonals = [3][3][2]int{
		{{0, 2}, {1, 1}, {2, 0}}, // c·e·g
		{{0, 1}, {1, 0}, {2, 2}}, // b·d·i
		{{0, 0}, {1, 2}, {2, 1}}, // a·f·h
	}
)

// Sarrus returns a·e·i + b·f·g + c·d·h − c·e·g − b·d·i − a·f·h for the
// row-major entries a..i of m. The array type pins the order at compile time.
func Sarrus(m [3][3]float64) float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	return a*e*i + b*f*g + c*d*h - c*e*g - b*d*i - a*f*h
}

// ClosedForm3 resolves a 3×3 determinant and records the six diagonal
// products under label.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrUnsupportedOrder.
func ClosedForm3(m matrix.Matrix, label string) (*ClosedForm, error) {
	o, err := OrderOf(m)
	if err != nil {
		return nil, detErrorf(opClosedForm, err)
	}
	if o != Order3 {
		return nil, detErrorf(opClosedForm, fmt.Errorf("order %d: %w", int(o), ErrUnsupportedOrder))
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, detErrorf(opClosedForm, err)
	}

	return closedForm(d, label), nil
}

// closedForm assumes d is 3×3.
func closedForm(d *matrix.Dense, label string) *ClosedForm {
	var grid [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			grid[i][j], _ = d.At(i, j)
		}
	}

	cf := &ClosedForm{Label: label, Matrix: d, Value: Sarrus(grid)}
	for k := 0; k < 3; k++ {
		cf.Positive[k] = triple(&grid, positiveDiagonals[k])
		cf.Negative[k] = triple(&grid, negativeDiagonals[k])
	}

	return cf
}

func triple(grid *[3][3]float64, pos [3][2]int) Triple {
	var t Triple
	t.Product = 1
	for n, p := range pos {
		v := grid[p[0]][p[1]]
		t.Cells[n] = Cell{Row: p[0], Col: p[1], Value: v}
		t.Product *= v
	}

	return t
}
