package entities

// IndividualRate is the per-character slice of an analysis
type IndividualRate struct {
	Character         string `json:"character"`
	SuccessRate       int32  `json:"success_rate"`
	RecommendedAction string `json:"recommended_action"`
}

// AnalysisResult is the full response of a strategic analysis.
// IndividualRates holds exactly one entry per input character, in
// party order. StrategicRecommendations always has at least one entry.
type AnalysisResult struct {
	PartySuccessChance       int32            `json:"party_success_chance"`
	EncounterDifficulty      string           `json:"encounter_difficulty"`
	IndividualRates          []IndividualRate `json:"individual_success_rates"`
	StrategicRecommendations []string         `json:"strategic_recommendations"`
}
