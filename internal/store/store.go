// Package store defines the interface for persisting generated populations
// for downstream analysis, plus the sentinel errors implementations map
// backend failures onto.
package store

import (
	"context"
	"errors"

	"github.com/wolfeidau/abacgen/internal/population"
)

// Sentinel errors for common error conditions
var (
	ErrRunAlreadyExists = errors.New("generation run already exists")
	ErrRunNotFound      = errors.New("generation run not found")
)

// Run describes one persisted generation run.
type Run struct {
	RunID  string
	Preset string
	Seed   int64
}

// PopulationStore persists a fully generated population. Loading is
// all-or-nothing; a failed load leaves no partial run behind the run id.
type PopulationStore interface {
	// SaveRun persists the run record and every organization, user, and
	// document of the population under it.
	SaveRun(ctx context.Context, run *Run, pop *population.Population) error

	// CountEntities returns the persisted user and document counts for a
	// run, for post-load verification.
	CountEntities(ctx context.Context, runID string) (users int64, documents int64, err error)

	// Close releases backend resources.
	Close()
}
