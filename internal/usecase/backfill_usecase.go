package usecase

import (
	"context"
)

// BackfillReport summarizes one Instagram backfill run.
type BackfillReport struct {
	Scanned    int      `json:"scanned"`
	AlreadySet int      `json:"alreadySet"`
	Matched    int      `json:"matched"`
	Updated    int      `json:"updated"`
	Unmatched  int      `json:"unmatched"`
	Errors     []string `json:"errors,omitempty"`
	DryRun     bool     `json:"dryRun"`
}

// BackfillUsecase defines the interface for the Instagram backfill job
type BackfillUsecase interface {
	// Run matches barracas without an Instagram handle against registration
	// contact data and, when apply is true, writes the handles back. Per-row
	// failures are collected in the report; the run keeps going.
	Run(ctx context.Context, apply bool) (*BackfillReport, error)
}
