package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

func TestDifficultyProfile(t *testing.T) {
	tests := []struct {
		eventType      entities.EncounterType
		wantMultiplier float64
		wantLabel      string
	}{
		{entities.EncounterDragonFight, 0.85, "Hard"},
		{entities.EncounterAncientTrap, 0.9, "Medium"},
		{entities.EncounterMysticPuzzle, 1.0, "Easy"},
		{"Something Else", 0.95, "Unknown"},
		{"", 0.95, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.InDelta(t, tt.wantMultiplier, DifficultyMultiplier(tt.eventType), 1e-9)
			assert.Equal(t, tt.wantLabel, DifficultyLabel(tt.eventType))

			m := DifficultyMultiplier(tt.eventType)
			assert.Greater(t, m, 0.0)
			assert.LessOrEqual(t, m, 1.0)
		})
	}
}
