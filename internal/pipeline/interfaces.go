package pipeline

import (
	"github.com/launchpad-program/stipend-merge/internal/csvio"
)

// TableReader is the CSV transport the merger reads input files through.
// Every cell must arrive as text: numeric inference upstream would corrupt
// currency-formatted strings before NormalizeAmount sees them.
type TableReader interface {
	ReadTable(path string) (*csvio.Table, error)
}

// TableWriter persists the canonical rows as the single output artifact.
type TableWriter interface {
	WriteTable(path string, columns []string, rows [][]string) error
}

// Reporter receives the observational console output: per-file progress, the
// post-sort summary, and a preview of the first rows. It has no influence on
// the artifact.
type Reporter interface {
	FileProcessed(r FileReport)
	Summarize(s Summary)
	Preview(columns []string, rows [][]string)
}

// localTable is the production TableReader and TableWriter over local files.
type localTable struct{}

func (localTable) ReadTable(path string) (*csvio.Table, error) {
	return csvio.ReadTable(path)
}

func (localTable) WriteTable(path string, columns []string, rows [][]string) error {
	return csvio.WriteTable(path, columns, rows)
}
