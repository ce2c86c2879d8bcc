// Package report prints the human-readable run output: per-file progress,
// summary statistics, and a preview of the merged rows. Nothing here affects
// the artifact; the pipeline stays correct with any Reporter.
package report

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/launchpad-program/stipend-merge/internal/pipeline"
)

// Console implements pipeline.Reporter by writing plain text to out.
type Console struct {
	out io.Writer
}

// NewConsole creates a Console reporter writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// FileProcessed prints one line per input file: either its row count and
// column list, or why it was skipped.
func (c *Console) FileProcessed(r pipeline.FileReport) {
	base := filepath.Base(r.Path)
	if r.Skipped {
		fmt.Fprintf(c.out, "Skipped %s: %s\n", base, r.Reason)
		return
	}
	fmt.Fprintf(c.out, "Processed %s (%s): %d rows, columns [%s]\n",
		base, r.Source, r.RowCount, strings.Join(r.Columns, ", "))
}

// Summarize prints the post-sort statistics.
func (c *Console) Summarize(s pipeline.Summary) {
	fmt.Fprintln(c.out, "\n--- Summary ---")
	fmt.Fprintf(c.out, "Transactions:    %d\n", s.Transactions)
	fmt.Fprintf(c.out, "Unique students: %d\n", s.UniqueNames)
	fmt.Fprintf(c.out, "Total amount:    %s\n", FormatDollars(s.TotalAmount))
	fmt.Fprintf(c.out, "Date range:      %s to %s\n", s.MinDate, s.MaxDate)
}

// Preview prints the first rows of the sorted output as an aligned table.
func (c *Console) Preview(columns []string, rows [][]string) {
	fmt.Fprintf(c.out, "\n--- First %d rows (preview) ---\n", len(rows))
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// FormatDollars renders an amount with a dollar sign, thousands separators,
// and two decimal places, e.g. 12345.6 → "$12,345.60".
func FormatDollars(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(frac)
	return b.String()
}
