package pipeline

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/launchpad-program/stipend-merge/internal/domain"
)

// sortTransactions orders rows by name ascending, then date ascending, both
// by plain string comparison. Dates are opaque: "3/28/2023" and
// "03/28/2023 11:46 AM" sort lexicographically, not chronologically, because
// the source formats are not normalized. The sort is stable, so rows with
// identical name and date keep their input order.
func sortTransactions(txs []domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Name != txs[j].Name {
			return txs[i].Name < txs[j].Name
		}
		return txs[i].Date < txs[j].Date
	})
}

// buildSummary computes the post-sort statistics for one run. Min and max
// date use the same lexicographic ordering as the sort.
func buildSummary(txs []domain.Transaction) Summary {
	s := Summary{Transactions: len(txs)}
	names := make(map[string]struct{}, len(txs))
	for i, t := range txs {
		names[t.Name] = struct{}{}
		s.TotalAmount += t.Amount
		if i == 0 || t.Date < s.MinDate {
			s.MinDate = t.Date
		}
		if i == 0 || t.Date > s.MaxDate {
			s.MaxDate = t.Date
		}
	}
	s.UniqueNames = len(names)
	return s
}

// Exporter serializes sorted transactions into the canonical CSV artifact.
type Exporter struct {
	writer TableWriter
}

// NewExporter creates an Exporter writing through the given transport.
func NewExporter(writer TableWriter) *Exporter {
	return &Exporter{writer: writer}
}

// Export writes the canonical artifact at path and returns the serialized
// header and rows for preview reporting. The source column appears only when
// more than one family contributed rows.
func (e *Exporter) Export(path string, txs []domain.Transaction, multiSource bool) ([]string, [][]string, error) {
	columns := []string{ColDate, ColName, ColAmount}
	if multiSource {
		columns = append(columns, ColSource)
	}

	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		row := []string{t.Date, t.Name, formatAmount(t.Amount)}
		if multiSource {
			row = append(row, string(t.Source))
		}
		rows = append(rows, row)
	}

	if err := e.writer.WriteTable(path, columns, rows); err != nil {
		return nil, nil, fmt.Errorf("Export: %w", err)
	}
	return columns, rows, nil
}

// formatAmount writes the amount without currency symbols or separators,
// using the shortest decimal form that round-trips.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
