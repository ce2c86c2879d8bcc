// Package domain holds the canonical types shared across the merge pipeline.
package domain

// Source identifies which export family a transaction came from.
type Source string

const (
	SourcePex   Source = "Pex"
	SourceRapid Source = "Rapid"
)

// Transaction is one canonical stipend row. Dates are opaque strings used
// only as sort keys; they vary in format between export families and are
// never parsed into calendar types.
type Transaction struct {
	Date   string  // opaque sortable string, format varies by source
	Name   string  // student full name, primary sort key
	Amount float64 // stipend payment (positive) or reversal (negative)
	Source Source
}

// RawRow maps a source-specific column name to its raw cell text. Values
// stay untyped text until an explicit conversion produces a Transaction
// field; columns outside the canonical set are dropped during projection.
type RawRow map[string]string
