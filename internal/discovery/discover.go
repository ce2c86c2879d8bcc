// Package discovery enumerates stipend export files in the input directory.
// Filename conventions are used only to find candidate files; which adapter
// handles a file is decided later from its header shape.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	// PexPattern matches the fiscal-year Pex exports, e.g.
	// "Pex Transactions - FY23.csv".
	PexPattern = "Pex Transactions - FY*.csv"

	// RapidFilename is the fixed name the Rapid export is dropped under.
	RapidFilename = "rapid_transactions.csv"
)

// SourceFile is a discovered input artifact.
type SourceFile struct {
	Path string
}

// Discover returns all candidate input files under dir in lexicographic path
// order, so the fiscal-year exports merge chronologically by filename.
func Discover(dir string) ([]SourceFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, PexPattern))
	if err != nil {
		return nil, fmt.Errorf("Discover: globbing %s: %w", dir, err)
	}

	rapid := filepath.Join(dir, RapidFilename)
	if _, err := os.Stat(rapid); err == nil {
		paths = append(paths, rapid)
	}

	sort.Strings(paths)

	files := make([]SourceFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, SourceFile{Path: p})
	}
	return files, nil
}
