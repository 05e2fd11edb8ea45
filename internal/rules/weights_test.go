package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

func TestWeightsFor(t *testing.T) {
	tests := []struct {
		name      string
		eventType entities.EncounterType
		want      StatWeights
	}{
		{
			name:      "dragon fight favors strength and health",
			eventType: entities.EncounterDragonFight,
			want:      StatWeights{Strength: 1.3, Agility: 1.1, Health: 1.2, Mana: 1.1, Dexterity: 1.0, Wisdom: 0.9},
		},
		{
			name:      "ancient trap favors dexterity and agility",
			eventType: entities.EncounterAncientTrap,
			want:      StatWeights{Strength: 0.8, Agility: 1.3, Health: 1.0, Mana: 0.9, Dexterity: 1.4, Wisdom: 1.2},
		},
		{
			name:      "mystic puzzle favors wisdom and mana",
			eventType: entities.EncounterMysticPuzzle,
			want:      StatWeights{Strength: 0.7, Agility: 0.9, Health: 0.8, Mana: 1.3, Dexterity: 1.0, Wisdom: 1.5},
		},
		{
			name:      "unknown type falls back to neutral weights",
			eventType: "Goblin Ambush",
			want:      StatWeights{Strength: 1.0, Agility: 1.0, Health: 1.0, Mana: 1.0, Dexterity: 1.0, Wisdom: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightsFor(tt.eventType))
		})
	}
}

func TestStatWeights_Total(t *testing.T) {
	assert.InDelta(t, 6.0, WeightsFor("anything").Total(), 1e-9)
	assert.InDelta(t, 6.6, WeightsFor(entities.EncounterDragonFight).Total(), 1e-9)
	assert.InDelta(t, 6.6, WeightsFor(entities.EncounterAncientTrap).Total(), 1e-9)
	assert.InDelta(t, 6.2, WeightsFor(entities.EncounterMysticPuzzle).Total(), 1e-9)
}

func TestWeightedPower(t *testing.T) {
	c := &entities.Character{Strength: 10, Agility: 10, Health: 10, Mana: 10, Dexterity: 10, Wisdom: 10}

	// Uniform stats collapse to 10 * total weight
	assert.InDelta(t, 66.0, WeightedPower(c, WeightsFor(entities.EncounterDragonFight)), 1e-9)
	assert.InDelta(t, 60.0, WeightedPower(c, WeightsFor("unknown")), 1e-9)

	// Missing optional stats count as zero
	bare := &entities.Character{Strength: 20, Agility: 10, Health: 15}
	w := WeightsFor(entities.EncounterDragonFight)
	assert.InDelta(t, 20*1.3+10*1.1+15*1.2, WeightedPower(bare, w), 1e-9)
}
