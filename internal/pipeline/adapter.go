package pipeline

import (
	"fmt"
	"strings"

	"github.com/launchpad-program/stipend-merge/internal/domain"
)

// The two export families differ only in header shape: Pex exports use
// title-case Date/Name/Amount columns, Rapid exports use lower-case date and
// a "transaction" amount column. Dispatch is structural; filenames play no
// part in it.

// adapter maps one family's raw columns onto the canonical schema.
type adapter struct {
	source domain.Source
	date   string
	name   string
	amount string
}

func (a adapter) required() []string {
	return []string{a.date, a.name, a.amount}
}

// Classification order is fixed; a header satisfying both families (none of
// the known exports does) resolves to Pex.
var adapters = []adapter{
	{source: domain.SourcePex, date: "Date", name: "Name", amount: "Amount"},
	{source: domain.SourceRapid, date: "date", name: "Name", amount: "transaction"},
}

// classify picks the adapter whose required columns are all present in the
// header, exact case. Extra columns never disqualify a file; they are
// dropped during projection.
func classify(header []string) (adapter, bool) {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	for _, a := range adapters {
		if len(missingColumns(present, a.required())) == 0 {
			return a, true
		}
	}
	return adapter{}, false
}

func missingColumns(present map[string]struct{}, required []string) []string {
	var missing []string
	for _, col := range required {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// describeHeaderMismatch explains why a header matched neither family, for
// the skip warning.
func describeHeaderMismatch(header []string) string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	parts := make([]string, 0, len(adapters))
	for _, a := range adapters {
		parts = append(parts, fmt.Sprintf("%s is missing %v", a.source, missingColumns(present, a.required())))
	}
	return "header matches no known source family: " + strings.Join(parts, "; ")
}

// project maps one raw row onto a canonical transaction. Every column
// outside the canonical set is dropped here; no source-specific column may
// escape into the output.
func (a adapter) project(row domain.RawRow, diags *Diagnostics) domain.Transaction {
	return domain.Transaction{
		Date:   row[a.date],
		Name:   row[a.name],
		Amount: NormalizeAmount(row[a.amount], diags),
		Source: a.source,
	}
}
