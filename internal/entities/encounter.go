package entities

// EncounterType identifies the kind of challenge a party faces
type EncounterType string

// Known encounter types. Anything else falls back to the default
// weight, difficulty, and prior tables.
const (
	EncounterDragonFight  EncounterType = "Dragon Fight"
	EncounterAncientTrap  EncounterType = "Ancient Trap"
	EncounterMysticPuzzle EncounterType = "Mystic Puzzle"
)

// Enemy is the opposing entity for combat-style encounters
type Enemy struct {
	Name   string `json:"name"`
	Health int32  `json:"health"`
}

// Encounter describes the challenge being analyzed. Enemy is only
// meaningful for combat-style encounters and may be nil otherwise.
type Encounter struct {
	EventType EncounterType `json:"event_type"`
	Enemy     *Enemy        `json:"enemy,omitempty"`
}
