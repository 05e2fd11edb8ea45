package rules

import (
	"math"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

const (
	// rateBaselineStat is the per-attribute value that maps a character's
	// weighted power onto a 0-1 scale. A character averaging 15 in every
	// stat lands at base 1.0 before the difficulty multiplier.
	rateBaselineStat = 15.0

	rateOffset = 20.0
	rateScale  = 75.0

	rateFloor = 15
	rateCeil  = 95
)

// SuccessRate computes a character's individual success percentage for
// an encounter. This is the same formula regardless of which estimation
// strategy produced the party-level number: it measures the character's
// weighted standing, not the encounter-win probability, so the two are
// not expected to average out against each other.
func SuccessRate(c *entities.Character, eventType entities.EncounterType) int32 {
	w := WeightsFor(eventType)
	base := WeightedPower(c, w) / (w.Total() * rateBaselineStat)
	rate := rateOffset + base*rateScale*DifficultyMultiplier(eventType)
	return clampPercent(rate, rateFloor, rateCeil)
}

// clampPercent rounds to the nearest integer percent and pins the
// result inside [lo, hi].
func clampPercent(v float64, lo, hi int32) int32 {
	r := int32(math.Round(v))
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}
