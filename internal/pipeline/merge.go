package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/launchpad-program/stipend-merge/internal/discovery"
	"github.com/launchpad-program/stipend-merge/internal/domain"
)

// Merger accumulates canonical transactions from a sequence of discovered
// input files. Per-file and per-row failures become diagnostics and the run
// continues; only a run that yields no rows at all is fatal.
type Merger struct {
	reader TableReader
	log    zerolog.Logger
}

// NewMerger creates a Merger reading input files through the given transport.
func NewMerger(reader TableReader, log zerolog.Logger) *Merger {
	return &Merger{reader: reader, log: log}
}

// Merge processes files in the order given (discovery already sorted them
// lexicographically) and returns the accumulated transactions. The result is
// non-nil even on error so per-file reports survive a fatal-empty run.
// Duplicates are preserved: the same student may legitimately receive
// multiple stipends.
func (m *Merger) Merge(files []discovery.SourceFile, diags *Diagnostics) (*MergeResult, error) {
	result := &MergeResult{}

	if len(files) == 0 {
		return result, fmt.Errorf("Merge: no input files discovered")
	}

	seen := make(map[domain.Source]bool)
	for _, file := range files {
		result.Files = append(result.Files, m.mergeFile(file, result, seen, diags))
	}

	if len(result.Transactions) == 0 {
		return result, fmt.Errorf("Merge: no input file contributed any rows")
	}
	return result, nil
}

func (m *Merger) mergeFile(file discovery.SourceFile, result *MergeResult, seen map[domain.Source]bool, diags *Diagnostics) FileReport {
	table, err := m.reader.ReadTable(file.Path)
	if err != nil {
		diags.Warnf("skipping %s: %v", file.Path, err)
		return FileReport{Path: file.Path, Skipped: true, Reason: err.Error()}
	}

	a, ok := classify(table.Columns)
	if !ok {
		reason := describeHeaderMismatch(table.Columns)
		diags.Warnf("skipping %s: %s", file.Path, reason)
		return FileReport{
			Path:     file.Path,
			Columns:  table.Columns,
			RowCount: len(table.Rows),
			Skipped:  true,
			Reason:   reason,
		}
	}

	for _, row := range table.Rows {
		result.Transactions = append(result.Transactions, a.project(row, diags))
	}
	if len(table.Rows) > 0 && !seen[a.source] {
		seen[a.source] = true
		result.Sources = append(result.Sources, a.source)
	}

	m.log.Info().
		Str("file", file.Path).
		Str("source", string(a.source)).
		Int("rows", len(table.Rows)).
		Strs("columns", table.Columns).
		Msg("Processed input file")

	return FileReport{
		Path:     file.Path,
		Columns:  table.Columns,
		RowCount: len(table.Rows),
		Source:   a.source,
	}
}
