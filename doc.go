// Package laplace computes determinants the way they are taught: by
// cofactor (Laplace) expansion along the first row, down to the closed
// 3×3 rule, keeping every intermediate step.
//
// What is inside:
//
//	matrix/ — Dense matrices, Add/Sub/Mul, minors, lenient cell parsing
//	det/    — the expansion engine, its nested trace and text derivation
//	cmd/    — detcalc, a small CLI over both
//
// Supported determinant orders are 3, 4 and 5. The expansion is plain
// recursion (5! closed-form evaluations at most) and makes no attempt at
// numerical stabilisation; use an LU-based routine for anything larger.
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}})
//	res, _ := det.Compute(m)
//	fmt.Println(res.Value) // 49
//
//	go install github.com/katalvlaran/laplace/cmd/detcalc@latest
package laplace
