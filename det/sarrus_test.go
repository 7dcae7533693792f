package det_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laplace/det"
	"github.com/katalvlaran/laplace/matrix"
)

func TestSarrus_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    [3][3]float64
		want float64
	}{
		{"identity", [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"zero row", [3][3]float64{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}, 0},
		{"integers", [3][3]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, 49},
		{"singular", [3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"diagonal", [3][3]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, 24},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, det.Sarrus(tc.m))
		})
	}
}

func TestSarrus_AgainstLU(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		rows := randomRows(rng, 3)
		var grid [3][3]float64
		for i := range grid {
			copy(grid[i][:], rows[i])
		}
		requireClose(t, gonumDet(rows), det.Sarrus(grid), "trial %d", trial)
	}
}

func TestClosedForm3_Triples(t *testing.T) {
	t.Parallel()

	cf, err := det.ClosedForm3(identity(t, 3), "I")
	require.NoError(t, err)
	require.Equal(t, 1.0, cf.Value)
	require.Equal(t, "I", cf.Label)

	// a·e·i, b·f·g, c·d·h contribute 1, 0, 0; every negative product is 0.
	assert.Equal(t, 1.0, cf.Positive[0].Product)
	assert.Equal(t, 0.0, cf.Positive[1].Product)
	assert.Equal(t, 0.0, cf.Positive[2].Product)
	for _, tr := range cf.Negative {
		assert.Equal(t, 0.0, tr.Product)
	}

	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	cf, err = det.ClosedForm3(hide{m}, "")
	require.NoError(t, err)
	// b·f·g
	assert.Equal(t, [3]det.Cell{{Row: 0, Col: 1, Value: 2}, {Row: 1, Col: 2, Value: 6}, {Row: 2, Col: 0, Value: 7}}, cf.Positive[1].Cells)
	// a·f·h
	assert.Equal(t, [3]det.Cell{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 2, Value: 6}, {Row: 2, Col: 1, Value: 8}}, cf.Negative[2].Cells)
	var sum float64
	for k := 0; k < 3; k++ {
		sum += cf.Positive[k].Product - cf.Negative[k].Product
	}
	assert.Equal(t, cf.Value, sum)
	assert.Equal(t, -3.0, cf.Value)
}

func TestClosedForm3_Errors(t *testing.T) {
	t.Parallel()

	_, err := det.ClosedForm3(nil, "")
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = det.ClosedForm3(identity(t, 4), "")
	require.ErrorIs(t, err, det.ErrUnsupportedOrder)

	nonSquare, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	_, err = det.ClosedForm3(nonSquare, "")
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
