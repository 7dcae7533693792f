package det_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/laplace/matrix"
)

// hide masks the concrete *matrix.Dense type.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func identity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

// randomRows returns n×n values uniformly drawn from [-5, 5).
func randomRows(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*10 - 5
		}
	}

	return rows
}

// gonumDet is the independent LU-based reference determinant.
func gonumDet(rows [][]float64) float64 {
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, r := range rows {
		data = append(data, r...)
	}

	return mat.Det(mat.NewDense(n, n, data))
}

func transpose(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows[0]))
	for j := range out {
		out[j] = make([]float64, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}

	return out
}

// requireClose compares with a tolerance scaled to the magnitude of want.
func requireClose(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	tol := 1e-8 * math.Max(1, math.Abs(want))
	require.InDelta(t, want, got, tol, msgAndArgs...)
}
