package pipeline

import (
	"fmt"

	"github.com/launchpad-program/stipend-merge/internal/domain"
)

// Canonical output column names, in serialization order.
const (
	ColDate   = "date"
	ColName   = "name"
	ColAmount = "amount"
	ColSource = "source"
)

// Diagnostics collects the non-fatal warnings produced during a run: skipped
// files and unparseable amounts. Core logic records here instead of printing,
// so it stays testable without capturing log output.
type Diagnostics struct {
	warnings []string
}

// Warnf records one warning.
func (d *Diagnostics) Warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the recorded warnings in order.
func (d *Diagnostics) Warnings() []string {
	return d.warnings
}

// FileReport describes one processed input file for console reporting.
type FileReport struct {
	Path     string
	Columns  []string
	RowCount int
	Source   domain.Source
	Skipped  bool
	Reason   string
}

// Summary holds the post-sort statistics for one merge run.
type Summary struct {
	Transactions int
	UniqueNames  int
	TotalAmount  float64
	MinDate      string
	MaxDate      string
}

// MergeResult is everything one merge run accumulated before sorting.
type MergeResult struct {
	Transactions []domain.Transaction

	// Sources lists the distinct families that contributed at least one row,
	// in first-seen order.
	Sources []domain.Source

	Files []FileReport
}

// MultiSource reports whether more than one family contributed rows, which
// decides whether the output carries the source column.
func (r *MergeResult) MultiSource() bool {
	return len(r.Sources) > 1
}
