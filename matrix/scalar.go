// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseScalar converts raw cell text into a float64.
// Empty, unparsable, NaN and ±Inf input all become 0; this function never
// fails, so a bad cell degrades to zero instead of poisoning the arithmetic.
func ParseScalar(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return Sanitize(v)
}

// Sanitize maps NaN and ±Inf to 0 and returns finite values unchanged.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// ParseRow splits a textual row on whitespace and commas and parses every
// field with ParseScalar.
func ParseRow(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	out := make([]float64, len(fields))
	for i, f := range fields {
		out[i] = ParseScalar(f)
	}

	return out
}

// ParseGrid builds a Dense from textual rows.
// Errors: ErrInvalidDimensions (no rows, or an empty first row),
// ErrDimensionMismatch (rows of different lengths).
func ParseGrid(rows []string) (*Dense, error) {
	parsed := make([][]float64, len(rows))
	for i, row := range rows {
		parsed[i] = ParseRow(row)
	}
	d, err := NewDenseFromRows(parsed)
	if err != nil {
		return nil, fmt.Errorf("ParseGrid: %w", err)
	}

	return d, nil
}

// FormatScalar renders v in its shortest round-trip decimal form
// ("2", "-0.5", "1e+21").
func FormatScalar(v float64) string {
	if v == 0 {
		return "0" // also folds -0
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format renders m as space-separated values, one row per line, without a
// trailing newline. Assumes m is not nil.
func Format(m Matrix) string {
	var sb strings.Builder
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			v, _ := m.At(i, j) // in range by loop bounds
			sb.WriteString(FormatScalar(v))
		}
	}

	return sb.String()
}
