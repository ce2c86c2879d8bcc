// Package pipeline implements the one-shot merge run for stipend transaction
// exports: discover input files, reconcile each file's schema onto the
// canonical {date, name, amount[, source]} shape, normalize currency-formatted
// amounts, sort, and write the consolidated artifact.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/launchpad-program/stipend-merge/internal/discovery"
	"github.com/launchpad-program/stipend-merge/internal/logger"
)

// Config locates the input exports and the output artifact. Zero values fall
// back to the compiled-in defaults.
type Config struct {
	InputDir  string
	OutputDir string
}

// Run executes one full merge run to completion. It returns an error only on
// the fatal conditions: no input files discovered, no file contributed any
// rows, or the artifact could not be written. No partial artifact is ever
// produced; rows reach the writer only after a successful merge and sort.
func Run(ctx context.Context, cfg Config, reporter Reporter) error {
	log := logger.FromContext(ctx)
	log = log.With().Str("run_id", uuid.NewString()).Logger()

	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	// 1. Discover candidate input files.
	files, err := discovery.Discover(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	log.Info().Str("input_dir", cfg.InputDir).Int("files", len(files)).Msg("Discovered input files")

	// 2. Merge into canonical transactions.
	diags := &Diagnostics{}
	merger := NewMerger(localTable{}, log)
	result, mergeErr := merger.Merge(files, diags)

	for _, fr := range result.Files {
		reporter.FileProcessed(fr)
	}
	for _, w := range diags.Warnings() {
		log.Warn().Msg(w)
	}
	if mergeErr != nil {
		return fmt.Errorf("Run: %w", mergeErr)
	}

	// 3. Sort by name, then date.
	sortTransactions(result.Transactions)

	// 4. Write the canonical artifact.
	outPath := filepath.Join(cfg.OutputDir, OutputFilename)
	exporter := NewExporter(localTable{})
	columns, rows, err := exporter.Export(outPath, result.Transactions, result.MultiSource())
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	// 5. Report statistics and preview.
	summary := buildSummary(result.Transactions)
	reporter.Summarize(summary)
	if len(rows) > PreviewRows {
		rows = rows[:PreviewRows]
	}
	reporter.Preview(columns, rows)

	log.Info().
		Int("transactions", summary.Transactions).
		Int("unique_names", summary.UniqueNames).
		Str("output", outPath).
		Msg("Merge complete")
	return nil
}
