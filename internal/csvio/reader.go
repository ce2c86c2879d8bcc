// Package csvio is the CSV transport for the merge pipeline. Files are read
// fully into memory with every cell kept as text, so currency-formatted
// amounts reach normalization untouched; automatic numeric inference here
// would corrupt them.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/launchpad-program/stipend-merge/internal/domain"
)

// Table is one fully-read input file: its trimmed header and every data row
// mapped by column name.
type Table struct {
	Path    string
	Columns []string
	Rows    []domain.RawRow
}

// ReadTable reads an entire CSV file as text. The file is opened, read, and
// closed before ReadTable returns. Rows shorter than the header leave the
// trailing columns absent; cells past the header are dropped.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadTable: opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{Path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ReadTable: reading header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []domain.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadTable: reading row of %s: %w", path, err)
		}

		row := make(domain.RawRow, len(header))
		for i, value := range record {
			if i < len(header) {
				row[header[i]] = value
			}
		}
		rows = append(rows, row)
	}

	return &Table{Path: path, Columns: header, Rows: rows}, nil
}
