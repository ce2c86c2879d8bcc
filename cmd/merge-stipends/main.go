// merge-stipends consolidates the fiscal-year Pex stipend exports and the
// Rapid export into one sorted CSV at <output-dir>/merged_stipends.csv.
//
// It takes no arguments. Locations come from STIPEND_INPUT_DIR and
// STIPEND_OUTPUT_DIR (defaults: Data and Data/processed), optionally loaded
// from a .env file.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/launchpad-program/stipend-merge/internal/logger"
	"github.com/launchpad-program/stipend-merge/internal/pipeline"
	"github.com/launchpad-program/stipend-merge/internal/report"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	log := logger.New()
	ctx := logger.WithContext(context.Background(), log)

	cfg := pipeline.Config{
		InputDir:  os.Getenv("STIPEND_INPUT_DIR"),
		OutputDir: os.Getenv("STIPEND_OUTPUT_DIR"),
	}

	if err := pipeline.Run(ctx, cfg, report.NewConsole(os.Stdout)); err != nil {
		log.Fatal().Err(err).Msg("Merge failed")
	}
}
