// SPDX-License-Identifier: MIT

package det

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOrder is returned when the matrix order is outside the
// supported set {3, 4, 5}.
var ErrUnsupportedOrder = errors.New("det: unsupported matrix order")

// Operation tags used when wrapping errors.
const (
	opCompute    = "Compute"
	opClosedForm = "ClosedForm3"
	opOrderOf    = "OrderOf"
)

// detErrorf wraps err with an operation tag; err must be non-nil.
func detErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
