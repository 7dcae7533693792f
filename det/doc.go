// Package det computes determinants of 3×3, 4×4 and 5×5 matrices by
// first-row cofactor (Laplace) expansion that bottoms out in the closed
// six-term 3×3 rule, and records every step of the derivation.
//
// The package provides:
//
//   - Compute, the entry point: validates the input, picks closed form or
//     expansion from the matrix order and returns a *Result.
//   - Sarrus and ClosedForm3 for the 3×3 rule on its own.
//   - Result/ExpansionStep/ClosedForm, an immutable nested trace, and
//     Result.Text for a human-readable derivation.
//   - WithObserver and WithPace for presentation layers that want to show
//     progress column by column; WithLogger for zap debug logs.
//
// Everything is synchronous and free of shared state; equal inputs always
// yield equal results and traces.
package det
