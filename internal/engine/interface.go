// Package engine defines the encounter-outcome estimation boundary.
// Implementations turn a party snapshot and an encounter descriptor
// into a success percentage; the strategies are interchangeable behind
// this interface, including an externally trained model.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine Estimator

import (
	"context"
)

// Estimator computes an overall party success probability for an
// encounter. Implementations must be safe for concurrent use and must
// not retain the input snapshot after returning.
type Estimator interface {
	// Estimate returns the party's success chance as an integer percent.
	// Each implementation documents its own clamp bounds; no strategy
	// ever returns exactly 0 or 100.
	Estimate(ctx context.Context, input *EstimateInput) (*EstimateOutput, error)

	// Name identifies the strategy for logging and stored records
	Name() string
}
