package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteTable writes the canonical rows to path as UTF-8 CSV with a header
// row. The parent directory is created if absent and any previous artifact
// at path is truncated, never appended to.
func WriteTable(path string, columns []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("WriteTable: creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteTable: creating %s: %w", path, err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(columns); err != nil {
		f.Close()
		return fmt.Errorf("WriteTable: writing header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("WriteTable: writing row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return fmt.Errorf("WriteTable: flushing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("WriteTable: closing %s: %w", path, err)
	}
	return nil
}
