package analyzer

import (
	"fmt"
	"time"

	"github.com/plainterms/legal-analyzer/internal/clause"
)

// Options controls a single analysis run.
type Options struct {
	// MaxClauses caps extracted clauses; valid range 1-50.
	MaxClauses int
	// IncludeSimplification enables the batched simplification stage.
	IncludeSimplification bool
	// ChunkThreshold, ChunkSize and ChunkOverlap tune large-document
	// segmentation.
	ChunkThreshold int
	ChunkSize      int
	ChunkOverlap   int
	// BatchSize bounds concurrent simplifications per batch.
	BatchSize int
	// InterBatchDelay spaces simplification batches to bound load on the
	// simplifier backend.
	InterBatchDelay time.Duration
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{
		MaxClauses:            10,
		IncludeSimplification: true,
		ChunkThreshold:        10000,
		ChunkSize:             5000,
		ChunkOverlap:          500,
		BatchSize:             3,
		InterBatchDelay:       100 * time.Millisecond,
	}
}

// Validate checks option ranges; violations wrap ErrInvalidOptions.
func (o Options) Validate() error {
	if o.MaxClauses < 1 || o.MaxClauses > clause.MaxClauseLimit {
		return fmt.Errorf("%w: max clauses %d outside 1-%d",
			ErrInvalidOptions, o.MaxClauses, clause.MaxClauseLimit)
	}
	if o.BatchSize < 1 {
		return fmt.Errorf("%w: batch size %d must be positive", ErrInvalidOptions, o.BatchSize)
	}
	if o.ChunkThreshold < 1 {
		return fmt.Errorf("%w: chunk threshold %d must be positive", ErrInvalidOptions, o.ChunkThreshold)
	}
	if o.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrInvalidOptions, o.ChunkSize)
	}
	if o.ChunkOverlap < 0 || o.ChunkOverlap >= o.ChunkSize {
		return fmt.Errorf("%w: chunk overlap %d must be in [0,%d)",
			ErrInvalidOptions, o.ChunkOverlap, o.ChunkSize)
	}
	if o.InterBatchDelay < 0 {
		return fmt.Errorf("%w: inter-batch delay must not be negative", ErrInvalidOptions)
	}
	return nil
}
