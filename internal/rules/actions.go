package rules

import (
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

// Action labels returned by RecommendAction
const (
	ActionPowerAttack      = "Power Attack"
	ActionCastFireball     = "Cast Fireball"
	ActionDodgeAndWeave    = "Dodge and Weave"
	ActionDefensiveStance  = "Defensive Stance"
	ActionDisarmTrap       = "Disarm Trap"
	ActionAnalyzeMechanism = "Analyze Mechanism"
	ActionEvadePlate       = "Evade Pressure Plate"
	ActionProvideLookout   = "Provide Lookout"
	ActionDecipherRunes    = "Decipher Runes"
	ActionChannelInsight   = "Channel Insight"
	ActionManipulate       = "Manipulate Artifact"
	ActionObservePatterns  = "Observe Patterns"
	ActionTakeAction       = "Take Action"
)

// RecommendAction maps a character's stats and the encounter type to a
// single suggested action. Branches are checked in priority order with
// fixed thresholds, so identical inputs always yield the same label.
func RecommendAction(c *entities.Character, eventType entities.EncounterType) string {
	switch eventType {
	case entities.EncounterDragonFight:
		switch {
		case c.Strength > 15:
			return ActionPowerAttack
		case c.Mana > 15:
			return ActionCastFireball
		case c.Agility > 15:
			return ActionDodgeAndWeave
		default:
			return ActionDefensiveStance
		}
	case entities.EncounterAncientTrap:
		switch {
		case c.Dexterity > 15:
			return ActionDisarmTrap
		case c.Wisdom > 15:
			return ActionAnalyzeMechanism
		case c.Agility > 15:
			return ActionEvadePlate
		default:
			return ActionProvideLookout
		}
	case entities.EncounterMysticPuzzle:
		switch {
		case c.Wisdom > 15:
			return ActionDecipherRunes
		case c.Mana > 15:
			return ActionChannelInsight
		case c.Dexterity > 10:
			return ActionManipulate
		default:
			return ActionObservePatterns
		}
	default:
		return ActionTakeAction
	}
}
