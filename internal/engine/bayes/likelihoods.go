package bayes

import (
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

// Stat value buckets
const (
	bucketLow  = iota // < 10
	bucketMed         // 10-19
	bucketHigh        // >= 20
)

func bucketOf(v int32) int {
	switch {
	case v < 10:
		return bucketLow
	case v < 20:
		return bucketMed
	default:
		return bucketHigh
	}
}

// statName indexes the likelihood tables
type statName string

const (
	statStrength  statName = "strength"
	statAgility   statName = "agility"
	statHealth    statName = "health"
	statMana      statName = "mana"
	statDexterity statName = "dexterity"
	statWisdom    statName = "wisdom"
)

// statLikelihood holds P(bucket|success) and P(bucket|failure) for one
// stat, indexed low/med/high.
type statLikelihood struct {
	Success [3]float64
	Failure [3]float64
}

// neutralLikelihood applies to stats an encounter barely cares about:
// high values lean mildly toward success.
var neutralLikelihood = statLikelihood{
	Success: [3]float64{0.2, 0.4, 0.4},
	Failure: [3]float64{0.4, 0.4, 0.2},
}

// sharpLikelihood applies to the stats that decide an encounter: the
// bucket signal is much stronger in both directions.
var sharpLikelihood = statLikelihood{
	Success: [3]float64{0.1, 0.3, 0.6},
	Failure: [3]float64{0.6, 0.3, 0.1},
}

// sharpenedStats lists, per encounter type, the stats whose likelihoods
// are sharpened beyond the neutral table.
var sharpenedStats = map[entities.EncounterType][]statName{
	entities.EncounterDragonFight:  {statStrength, statHealth, statAgility},
	entities.EncounterAncientTrap:  {statDexterity, statAgility, statWisdom},
	entities.EncounterMysticPuzzle: {statWisdom, statMana},
}

func likelihoodFor(eventType entities.EncounterType, stat statName) statLikelihood {
	for _, s := range sharpenedStats[eventType] {
		if s == stat {
			return sharpLikelihood
		}
	}
	return neutralLikelihood
}

// classPrior holds the per-encounter P(success), P(failure) before any
// evidence is applied.
type classPrior struct {
	Success float64
	Failure float64
}

func priorFor(eventType entities.EncounterType) classPrior {
	switch eventType {
	case entities.EncounterDragonFight:
		return classPrior{Success: 0.4, Failure: 0.6}
	case entities.EncounterAncientTrap:
		return classPrior{Success: 0.55, Failure: 0.45}
	case entities.EncounterMysticPuzzle:
		return classPrior{Success: 0.7, Failure: 0.3}
	default:
		return classPrior{Success: 0.5, Failure: 0.5}
	}
}

type statValue struct {
	Name  statName
	Value int32
}

// statValues returns a character's stats in table order
func statValues(c *entities.Character) []statValue {
	return []statValue{
		{statStrength, c.Strength},
		{statAgility, c.Agility},
		{statHealth, c.Health},
		{statMana, c.Mana},
		{statDexterity, c.Dexterity},
		{statWisdom, c.Wisdom},
	}
}
