// Package matrix offers the dense matrix type and the arithmetic used by
// the determinant engine.
//
// The matrix package provides:
//
//   - Matrix, a small interface over rectangular float64 storage, and Dense,
//     its row-major implementation with bounds-checked At/Set.
//   - Add, Sub and Mul, which validate shapes and return fresh results.
//   - Minor, which removes one row and one column (panics on bad indices).
//   - ParseScalar/ParseRow/ParseGrid, which read cell text and turn anything
//     that is not a finite number into 0, plus Format for text output.
//
// Errors are package sentinels (errors.go) wrapped with the operation name;
// match them with errors.Is.
package matrix
