// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/qsieve/qs"
	"github.com/rodaine/table"
)

// newTable returns a table with the shared header and first-column styles.
func newTable(w io.Writer, headers ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New(headers...)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(w)

	return tbl
}

// RelationsTable prints one row per relation: x, y, the factorization of
// y over the base and its parity vector.
func RelationsTable(w io.Writer, res *qs.Result) {
	tbl := newTable(w, "x", "y", "factorization", "parity")
	for _, rel := range res.Relations {
		tbl.AddRow(rel.X, rel.Y, factorization(res.Base.Primes(), rel.Exponents), parity(rel.Parity()))
	}
	tbl.Print()
}

// Summary prints "n = p × q" in bold green.
func Summary(w io.Writer, res *qs.Result) {
	c := color.New(color.FgGreen, color.Bold)
	c.Fprintf(w, "%d = %d × %d\n", res.N, res.P, res.Q)
	if res.Base == nil {
		fmt.Fprintln(w, "perfect square")
		return
	}
	fmt.Fprintf(w, "%d relations over %d primes, %d null vector(s) tried\n",
		len(res.Relations), res.Base.Len(), res.Tried)
}

// factorization renders exponents as "2 · 5 · 7^2"; an empty product is "1".
func factorization(ps []int64, exps []int) string {
	var parts []string
	for j, e := range exps {
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, strconv.FormatInt(ps[j], 10))
		default:
			parts = append(parts, fmt.Sprintf("%d^%d", ps[j], e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, " · ")
}

func parity(bits []int) string {
	var sb strings.Builder
	for _, b := range bits {
		sb.WriteByte(byte('0' + b))
	}

	return sb.String()
}
