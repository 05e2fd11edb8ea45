// Package weighted implements the deterministic weighted-sum estimation
// strategy. It is the default strategy: order-invariant, cheap, and
// fully reproducible.
package weighted

import (
	"context"
	"math"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/rules"
)

const (
	// tuningK normalizes the party's weighted stat total. It has no
	// physical meaning; smaller values inflate the estimate. Pinned by
	// tests rather than derived.
	tuningK = 30.0

	// Clamp applied before the difficulty multiplier, so the final
	// output lands in [floor*0.85, ceil] = [13, 95].
	floorPercent = 15.0
	ceilPercent  = 95.0
)

// Estimator is the weighted-aggregate strategy
type Estimator struct{}

// New creates a weighted-sum estimator
func New() *Estimator {
	return &Estimator{}
}

var _ engine.Estimator = (*Estimator)(nil)

// Name identifies the strategy
func (e *Estimator) Name() string {
	return "weighted"
}

// Estimate sums every character's attributes scaled by the encounter's
// weight table, normalizes by party size, total weight, and the tuning
// constant, then clamps and applies the difficulty multiplier.
func (e *Estimator) Estimate(_ context.Context, input *engine.EstimateInput) (*engine.EstimateOutput, error) {
	if len(input.Party) == 0 {
		return nil, errors.InvalidArgument("party must not be empty")
	}

	eventType := eventTypeOf(input.Encounter)
	weights := rules.WeightsFor(eventType)

	total := 0.0
	for _, c := range input.Party {
		total += rules.WeightedPower(c, weights)
	}

	normalized := total / (float64(len(input.Party)) * weights.Total() * tuningK)
	percent := normalized * 100
	if percent < floorPercent {
		percent = floorPercent
	}
	if percent > ceilPercent {
		percent = ceilPercent
	}
	percent *= rules.DifficultyMultiplier(eventType)

	return &engine.EstimateOutput{SuccessChance: int32(math.Round(percent))}, nil
}

func eventTypeOf(enc *entities.Encounter) entities.EncounterType {
	if enc == nil {
		return ""
	}
	return enc.EventType
}
