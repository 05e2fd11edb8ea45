package rules

import (
	"fmt"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

// Tone thresholds for the leading narration sentence
const (
	toneCautionBelow    = 40
	toneAggressiveAbove = 75
)

// Narrate produces the ordered strategic-guidance sentences for an
// analysis. The first entry is always exactly one tone sentence chosen
// from the party success chance; encounter-specific sentences follow,
// naming the party's strongest character per relevant stat. Ties go to
// the earliest character in party order.
func Narrate(party []*entities.Character, eventType entities.EncounterType, successChance int32) []string {
	recs := []string{toneSentence(successChance)}
	if len(party) == 0 {
		return recs
	}

	switch eventType {
	case entities.EncounterDragonFight:
		tank := strongest(party, func(c *entities.Character) int32 { return c.Health })
		dealer := strongest(party, func(c *entities.Character) int32 { return c.Strength })
		recs = append(recs,
			fmt.Sprintf("%s should tank the dragon's attacks with their high health.", tank.Name),
			fmt.Sprintf("%s is your primary damage dealer against the dragon.", dealer.Name),
		)
	case entities.EncounterAncientTrap:
		lead := strongest(party, func(c *entities.Character) int32 { return c.Dexterity })
		support := strongest(party, func(c *entities.Character) int32 { return c.Wisdom })
		recs = append(recs, fmt.Sprintf("%s should take the lead on disarming the trap.", lead.Name))
		if support != lead {
			recs = append(recs, fmt.Sprintf("%s can support by analyzing the trap's mechanism.", support.Name))
		}
	case entities.EncounterMysticPuzzle:
		solver := strongest(party, func(c *entities.Character) int32 { return c.Wisdom })
		finder := strongest(party, func(c *entities.Character) int32 { return c.Mana })
		recs = append(recs, fmt.Sprintf("%s is your best puzzle solver; let them decipher the runes.", solver.Name))
		if finder != solver {
			recs = append(recs, fmt.Sprintf("%s can channel their mana to uncover hidden clues.", finder.Name))
		}
	default:
		recs = append(recs, "Stay alert and adapt as the situation unfolds.")
	}

	return recs
}

func toneSentence(successChance int32) string {
	switch {
	case successChance < toneCautionBelow:
		return "The odds are against you. Prioritize defense and look for an escape route."
	case successChance > toneAggressiveAbove:
		return "Your party has a commanding advantage. Press the attack and end this quickly."
	default:
		return "This is a balanced engagement. Coordinate your actions and play to each member's strengths."
	}
}

// strongest returns the party member with the highest value of the
// selected stat, breaking ties by first occurrence.
func strongest(party []*entities.Character, stat func(*entities.Character) int32) *entities.Character {
	best := party[0]
	for _, c := range party[1:] {
		if stat(c) > stat(best) {
			best = c
		}
	}
	return best
}
