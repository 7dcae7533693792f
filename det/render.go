// SPDX-License-Identifier: MIT

package det

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/laplace/matrix"
)

var num = matrix.FormatScalar

// Text renders the six-term derivation of a 3×3 determinant.
func (cf *ClosedForm) Text() string {
	var sb strings.Builder
	cf.write(&sb)

	return sb.String()
}

func (cf *ClosedForm) write(sb *strings.Builder) {
	if cf.Label == "" {
		sb.WriteString("Submatrix =\n")
	} else {
		fmt.Fprintf(sb, "Submatrix %s =\n", cf.Label)
	}
	fmt.Fprintf(sb, "%s\n", matrix.Format(cf.Matrix))
	sb.WriteString("Using the rule of Sarrus:\n")
	sb.WriteString("[")
	writeTriples(sb, cf.Positive)
	sb.WriteString("] - [")
	writeTriples(sb, cf.Negative)
	sb.WriteString("]\n")
	fmt.Fprintf(sb, "= %s\n", num(cf.Value))
}

func writeTriples(sb *strings.Builder, ts [3]Triple) {
	for n, t := range ts {
		if n > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(sb, "(%s×%s×%s)", num(t.Cells[0].Value), num(t.Cells[1].Value), num(t.Cells[2].Value))
	}
}

// Text renders the whole derivation: every expansion step down to the
// closed-form products, followed by the final value.
func (r *Result) Text() string {
	var sb strings.Builder
	if r.Closed != nil {
		r.Closed.write(&sb)
	} else {
		r.writeSteps(&sb)
	}
	fmt.Fprintf(&sb, "Final determinant: %s\n", num(r.Value))

	return sb.String()
}

// writeSteps renders the top-level expansion, one numbered step per column.
func (r *Result) writeSteps(sb *strings.Builder) {
	for _, st := range r.Steps {
		col := st.Pivot.Col
		fmt.Fprintf(sb, "Step %d:\n", col+1)
		fmt.Fprintf(sb, "Element a%d%d = %s\n", st.Pivot.Row+1, col+1, num(st.Pivot.Value))
		fmt.Fprintf(sb, "Submatrix (without row %d & column %d):\n%s\n", st.Pivot.Row+1, col+1, matrix.Format(st.Minor))
		st.Sub.writeNested(sb)
		fmt.Fprintf(sb, "Contribution to determinant: %d × %s × %s = %s\n\n",
			st.Sign, num(st.Pivot.Value), num(st.MinorDet), num(st.Contribution))
	}
}

// writeNested renders a minor's derivation inside an enclosing step.
func (r *Result) writeNested(sb *strings.Builder) {
	if r.Closed != nil {
		r.Closed.write(sb)
		return
	}
	for _, st := range r.Steps {
		col := st.Pivot.Col
		fmt.Fprintf(sb, "Cofactor of a%d%d: (-1)^%d × %s × %s = %s\n\n",
			st.Pivot.Row+1, col+1, col, num(st.Pivot.Value), num(st.MinorDet), num(st.Contribution))
		st.Sub.writeNested(sb)
		sb.WriteByte('\n')
	}
}
