package rules

import (
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

// DifficultyMultiplier returns the per-encounter scalar applied to
// success rates. Always in (0,1].
func DifficultyMultiplier(eventType entities.EncounterType) float64 {
	switch eventType {
	case entities.EncounterDragonFight:
		return 0.85
	case entities.EncounterAncientTrap:
		return 0.9
	case entities.EncounterMysticPuzzle:
		return 1.0
	default:
		return 0.95
	}
}

// DifficultyLabel returns the presentation label for an encounter type
func DifficultyLabel(eventType entities.EncounterType) string {
	switch eventType {
	case entities.EncounterDragonFight:
		return "Hard"
	case entities.EncounterAncientTrap:
		return "Medium"
	case entities.EncounterMysticPuzzle:
		return "Easy"
	default:
		return "Unknown"
	}
}
