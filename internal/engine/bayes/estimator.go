// Package bayes implements the probabilistic classifier estimation
// strategy: a Naive Bayes model over bucketed stat values, with
// post-hoc synergy and diminishing-returns adjustments.
package bayes

import (
	"context"
	"math"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
)

const (
	// laplace keeps a zero likelihood from collapsing the whole product
	laplace = 0.01

	// Party-size prior scaling: success prior is multiplied by
	// 0.8 + 0.1*size, failure divided by it.
	sizeScaleBase = 0.8
	sizeScaleStep = 0.1

	// Diminishing returns: each stat point above the threshold shaves
	// half a percent off the final chance, up to the cap.
	diminishThreshold = 22
	diminishPerPoint  = 0.005
	diminishCap       = 0.30

	floorPercent = 5.0
	ceilPercent  = 95.0
)

// Estimator is the Naive Bayes classifier strategy
type Estimator struct{}

// New creates a Bayes estimator
func New() *Estimator {
	return &Estimator{}
}

var _ engine.Estimator = (*Estimator)(nil)

// Name identifies the strategy
func (e *Estimator) Name() string {
	return "bayes"
}

// Estimate classifies the party against the encounter's success and
// failure likelihood tables, then applies the class-synergy multiplier
// and the diminishing-returns penalty. Output is clamped to [5,95].
func (e *Estimator) Estimate(_ context.Context, input *engine.EstimateInput) (*engine.EstimateOutput, error) {
	if len(input.Party) == 0 {
		return nil, errors.InvalidArgument("party must not be empty")
	}

	eventType := entities.EncounterType("")
	if input.Encounter != nil {
		eventType = input.Encounter.EventType
	}

	percent := e.classify(input.Party, eventType)
	percent *= synergyMultiplier(input.Party, eventType)
	percent *= 1 - diminishingReturns(input.Party)

	if percent < floorPercent {
		percent = floorPercent
	}
	if percent > ceilPercent {
		percent = ceilPercent
	}

	return &engine.EstimateOutput{SuccessChance: int32(math.Round(percent))}, nil
}

// classify runs the Naive Bayes pass in log space and normalizes the
// two class probabilities into a base success percent.
func (e *Estimator) classify(party []*entities.Character, eventType entities.EncounterType) float64 {
	prior := priorFor(eventType)
	sizeScale := sizeScaleBase + sizeScaleStep*float64(len(party))

	logSuccess := math.Log(prior.Success * sizeScale)
	logFailure := math.Log(prior.Failure / sizeScale)

	for _, c := range party {
		for _, sv := range statValues(c) {
			lik := likelihoodFor(eventType, sv.Name)
			b := bucketOf(sv.Value)
			logSuccess += math.Log(lik.Success[b] + laplace)
			logFailure += math.Log(lik.Failure[b] + laplace)
		}
	}

	// Shift by the max before exponentiating so long parties don't
	// underflow to 0/0.
	maxLog := math.Max(logSuccess, logFailure)
	expSuccess := math.Exp(logSuccess - maxLog)
	expFailure := math.Exp(logFailure - maxLog)

	return 100 * expSuccess / (expSuccess + expFailure)
}

// synergyMultiplier rewards beneficial class combinations and punishes
// degenerate ones.
func synergyMultiplier(party []*entities.Character, eventType entities.EncounterType) float64 {
	counts := map[entities.ClassType]int{}
	for _, c := range party {
		counts[c.Class]++
	}
	has := func(class entities.ClassType) bool { return counts[class] > 0 }

	multiplier := 1.0
	if has(entities.ClassBarbarian) && has(entities.ClassMage) {
		multiplier += 0.10
		if has(entities.ClassRogue) {
			multiplier += 0.15
		}
	}
	if eventType == entities.EncounterAncientTrap && has(entities.ClassRogue) && has(entities.ClassBandit) {
		multiplier += 0.20
	}
	if eventType == entities.EncounterDragonFight && counts[entities.ClassMage] == len(party) {
		multiplier -= 0.25
	}
	if eventType == entities.EncounterMysticPuzzle &&
		counts[entities.ClassBarbarian]+counts[entities.ClassBandit] == len(party) {
		multiplier -= 0.30
	}

	return multiplier
}

// diminishingReturns returns the fractional reduction for stats stacked
// above the threshold: growth above 22 is deliberately sub-linear.
func diminishingReturns(party []*entities.Character) float64 {
	excess := int32(0)
	for _, c := range party {
		for _, sv := range statValues(c) {
			if sv.Value > diminishThreshold {
				excess += sv.Value - diminishThreshold
			}
		}
	}
	reduction := diminishPerPoint * float64(excess)
	return math.Min(diminishCap, reduction)
}
