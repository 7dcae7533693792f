// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const panicMinorIndex = "matrix: Minor: index (%d,%d) out of range for %dx%d"
const panicMinorShape = "matrix: Minor: %dx%d has no non-empty minor"

// Minor returns the submatrix of m with row r and column c removed.
// The relative order of the remaining rows and columns is preserved.
//
// Index validity is a caller contract: the fixed-order expansion always
// passes in-range indices, so a violation is a programming error and panics
// instead of producing a wrong value. A nil m, or one with fewer than two
// rows or columns, panics as well.
//
// Complexity: O(r*c).
func Minor(m Matrix, r, c int) *Dense {
	if err := ValidateNotNil(m); err != nil {
		panic(err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		panic(fmt.Sprintf(panicMinorShape, rows, cols))
	}
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(fmt.Sprintf(panicMinorIndex, r, c, rows, cols))
	}

	out := &Dense{r: rows - 1, c: cols - 1, data: make([]float64, (rows-1)*(cols-1))}
	src, isDense := m.(*Dense)
	idx := 0
	for i := 0; i < rows; i++ {
		if i == r {
			continue
		}
		for j := 0; j < cols; j++ {
			if j == c {
				continue
			}
			if isDense {
				out.data[idx] = src.data[i*cols+j]
			} else {
				v, err := m.At(i, j)
				if err != nil {
					// in-range by construction; an error means a broken Matrix implementation
					panic(err)
				}
				out.data[idx] = v
			}
			idx++
		}
	}

	return out
}
