// Package entities provides core data structures for the squad optimizer.
package entities

// ClassType identifies a character class
type ClassType string

// Character classes
const (
	ClassBarbarian ClassType = "Barbarian"
	ClassMage      ClassType = "Mage"
	ClassRogue     ClassType = "Rogue"
	ClassBandit    ClassType = "Bandit"
)

// Character is the analysis-facing projection of a party member.
// Attribute values are expected in the 1-80 range but are not clamped;
// optional attributes missing from a request are zero.
type Character struct {
	Name      string    `json:"name"`
	Class     ClassType `json:"class"`
	Strength  int32     `json:"strength"`
	Agility   int32     `json:"agility"`
	Health    int32     `json:"health"`
	Mana      int32     `json:"mana"`
	Dexterity int32     `json:"dexterity"`
	Wisdom    int32     `json:"wisdom"`
}
