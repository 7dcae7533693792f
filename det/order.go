// SPDX-License-Identifier: MIT

package det

import (
	"fmt"

	"github.com/katalvlaran/laplace/matrix"
)

// Order is the validated order of a square matrix accepted by the engine.
// Order3 resolves through the closed form; Order4 and Order5 expand along
// the first row.
type Order int

// Supported orders.
const (
	Order3 Order = 3
	Order4 Order = 4
	Order5 Order = 5
)

// closedFormOrder is the order at which the expansion bottoms out.
const closedFormOrder = Order3

// Valid reports whether o is one of the supported orders.
func (o Order) Valid() bool { return o >= Order3 && o <= Order5 }

// Expands reports whether o is resolved by cofactor expansion.
func (o Order) Expands() bool { return o > closedFormOrder && o.Valid() }

func (o Order) String() string { return fmt.Sprintf("%dx%d", int(o), int(o)) }

// OrderOf validates m and returns its order.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrUnsupportedOrder.
func OrderOf(m matrix.Matrix) (Order, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, detErrorf(opOrderOf, err)
	}
	o := Order(m.Rows())
	if !o.Valid() {
		return 0, detErrorf(opOrderOf, fmt.Errorf("order %d: %w", m.Rows(), ErrUnsupportedOrder))
	}

	return o, nil
}
