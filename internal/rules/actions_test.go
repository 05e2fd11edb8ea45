package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

func TestRecommendAction_DragonFight(t *testing.T) {
	tests := []struct {
		name string
		c    entities.Character
		want string
	}{
		{
			name: "strong barbarian attacks",
			c:    entities.Character{Class: entities.ClassBarbarian, Strength: 25, Agility: 10, Mana: 5, Dexterity: 10, Wisdom: 5, Health: 25},
			want: ActionPowerAttack,
		},
		{
			name: "caster falls through to fireball",
			c:    entities.Character{Class: entities.ClassMage, Strength: 5, Mana: 25},
			want: ActionCastFireball,
		},
		{
			name: "nimble character dodges",
			c:    entities.Character{Class: entities.ClassRogue, Strength: 10, Mana: 10, Agility: 20},
			want: ActionDodgeAndWeave,
		},
		{
			name: "no qualifying stat defends",
			c:    entities.Character{Class: entities.ClassBandit, Strength: 10, Mana: 10, Agility: 10},
			want: ActionDefensiveStance,
		},
		{
			name: "strength wins even when mana is higher",
			c:    entities.Character{Class: entities.ClassMage, Strength: 16, Mana: 40},
			want: ActionPowerAttack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendAction(&tt.c, entities.EncounterDragonFight))
		})
	}
}

func TestRecommendAction_AncientTrap(t *testing.T) {
	tests := []struct {
		name string
		c    entities.Character
		want string
	}{
		{"high dexterity disarms", entities.Character{Dexterity: 20}, ActionDisarmTrap},
		{"wise character analyzes", entities.Character{Dexterity: 10, Wisdom: 18}, ActionAnalyzeMechanism},
		{"agile character evades", entities.Character{Dexterity: 10, Wisdom: 10, Agility: 16}, ActionEvadePlate},
		{"everyone else keeps watch", entities.Character{}, ActionProvideLookout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendAction(&tt.c, entities.EncounterAncientTrap))
		})
	}
}

func TestRecommendAction_MysticPuzzle(t *testing.T) {
	tests := []struct {
		name string
		c    entities.Character
		want string
	}{
		{
			"wise mage deciphers runes",
			entities.Character{Class: entities.ClassMage, Strength: 5, Agility: 10, Mana: 25, Dexterity: 10, Wisdom: 25, Health: 5},
			ActionDecipherRunes,
		},
		{"mana-heavy character channels", entities.Character{Wisdom: 10, Mana: 20}, ActionChannelInsight},
		{"dexterity threshold is 10 here, not 15", entities.Character{Wisdom: 10, Mana: 10, Dexterity: 11}, ActionManipulate},
		{"fallback observes", entities.Character{Wisdom: 10, Mana: 10, Dexterity: 10}, ActionObservePatterns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendAction(&tt.c, entities.EncounterMysticPuzzle))
		})
	}
}

func TestRecommendAction_UnknownEncounter(t *testing.T) {
	c := &entities.Character{Strength: 80, Wisdom: 80}
	assert.Equal(t, ActionTakeAction, RecommendAction(c, "Bar Brawl"))
}

func TestRecommendAction_IsPure(t *testing.T) {
	c := &entities.Character{Class: entities.ClassRogue, Dexterity: 17}
	first := RecommendAction(c, entities.EncounterAncientTrap)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RecommendAction(c, entities.EncounterAncientTrap))
	}
}
