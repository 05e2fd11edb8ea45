// Package rules holds the encounter math: stat weight tables, difficulty
// profiles, per-character success rates, action recommendations, and the
// strategic narration built from them. Everything here is a pure function
// of its inputs so the estimation strategies can share one set of tables.
package rules

import (
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

// StatWeights scales how much each attribute matters for an encounter
type StatWeights struct {
	Strength  float64
	Agility   float64
	Health    float64
	Mana      float64
	Dexterity float64
	Wisdom    float64
}

// Total returns the sum of all six weights
func (w StatWeights) Total() float64 {
	return w.Strength + w.Agility + w.Health + w.Mana + w.Dexterity + w.Wisdom
}

// WeightsFor returns the stat weight table for an encounter type.
// Unrecognized types get neutral all-1.0 weights.
func WeightsFor(eventType entities.EncounterType) StatWeights {
	switch eventType {
	case entities.EncounterDragonFight:
		return StatWeights{Strength: 1.3, Agility: 1.1, Health: 1.2, Mana: 1.1, Dexterity: 1.0, Wisdom: 0.9}
	case entities.EncounterAncientTrap:
		return StatWeights{Strength: 0.8, Agility: 1.3, Health: 1.0, Mana: 0.9, Dexterity: 1.4, Wisdom: 1.2}
	case entities.EncounterMysticPuzzle:
		return StatWeights{Strength: 0.7, Agility: 0.9, Health: 0.8, Mana: 1.3, Dexterity: 1.0, Wisdom: 1.5}
	default:
		return StatWeights{Strength: 1.0, Agility: 1.0, Health: 1.0, Mana: 1.0, Dexterity: 1.0, Wisdom: 1.0}
	}
}

// WeightedPower is a character's six attributes scaled by the weight table
func WeightedPower(c *entities.Character, w StatWeights) float64 {
	return float64(c.Strength)*w.Strength +
		float64(c.Agility)*w.Agility +
		float64(c.Health)*w.Health +
		float64(c.Mana)*w.Mana +
		float64(c.Dexterity)*w.Dexterity +
		float64(c.Wisdom)*w.Wisdom
}
