package v1

import (
	"time"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	analysisrecord "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/repositories/analysis_record"
)

// CharacterPayload is the wire form of a party member. Mana, dexterity,
// and wisdom are optional; missing values are treated as zero.
type CharacterPayload struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Strength  int32  `json:"strength"`
	Agility   int32  `json:"agility"`
	Health    int32  `json:"health"`
	Mana      int32  `json:"mana,omitempty"`
	Dexterity int32  `json:"dexterity,omitempty"`
	Wisdom    int32  `json:"wisdom,omitempty"`
}

// EnemyPayload is the wire form of a combat opponent
type EnemyPayload struct {
	Name   string `json:"name"`
	Health int32  `json:"health"`
}

// EncounterPayload is the wire form of the challenge descriptor
type EncounterPayload struct {
	EventType string        `json:"event_type"`
	Enemy     *EnemyPayload `json:"enemy,omitempty"`
}

// AnalyzeRequest is the body of POST /v1/analysis.
// current_turn_character is accepted for display-layer symmetry but
// does not affect the estimation.
type AnalyzeRequest struct {
	EntityID             string             `json:"entity_id,omitempty"`
	Party                []CharacterPayload `json:"party"`
	Encounter            *EncounterPayload  `json:"encounter"`
	CurrentTurnCharacter string             `json:"current_turn_character,omitempty"`
}

// IndividualRatePayload is the wire form of one character's analysis
type IndividualRatePayload struct {
	Character         string `json:"character"`
	SuccessRate       int32  `json:"success_rate"`
	RecommendedAction string `json:"recommended_action"`
}

// AnalyzeResponse is the body returned for a completed analysis
type AnalyzeResponse struct {
	AnalysisID               string                  `json:"analysis_id,omitempty"`
	PartySuccessChance       int32                   `json:"party_success_chance"`
	IndividualSuccessRates   []IndividualRatePayload `json:"individual_success_rates"`
	EncounterDifficulty      string                  `json:"encounter_difficulty"`
	StrategicRecommendations []string                `json:"strategic_recommendations"`
}

// RecordResponse is the wire form of a stored analysis record
type RecordResponse struct {
	AnalysisID string          `json:"analysis_id"`
	EntityID   string          `json:"entity_id,omitempty"`
	EventType  string          `json:"event_type"`
	PartySize  int32           `json:"party_size"`
	Strategy   string          `json:"strategy"`
	Result     AnalyzeResponse `json:"result"`
	CreatedAt  time.Time       `json:"created_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
}

// ListAnalysesResponse is the body of GET /v1/analysis
type ListAnalysesResponse struct {
	Analyses []RecordResponse `json:"analyses"`
}

// DeleteAnalysisResponse is the body of DELETE /v1/analysis/{id}
type DeleteAnalysisResponse struct {
	Deleted bool `json:"deleted"`
}

func toCharacter(p CharacterPayload) *entities.Character {
	return &entities.Character{
		Name:      p.Name,
		Class:     entities.ClassType(p.Type),
		Strength:  p.Strength,
		Agility:   p.Agility,
		Health:    p.Health,
		Mana:      p.Mana,
		Dexterity: p.Dexterity,
		Wisdom:    p.Wisdom,
	}
}

func toEncounter(p *EncounterPayload) *entities.Encounter {
	if p == nil {
		return nil
	}
	enc := &entities.Encounter{EventType: entities.EncounterType(p.EventType)}
	if p.Enemy != nil {
		enc.Enemy = &entities.Enemy{Name: p.Enemy.Name, Health: p.Enemy.Health}
	}
	return enc
}

func toAnalyzeResponse(analysisID string, result *entities.AnalysisResult) AnalyzeResponse {
	rates := make([]IndividualRatePayload, len(result.IndividualRates))
	for i, r := range result.IndividualRates {
		rates[i] = IndividualRatePayload{
			Character:         r.Character,
			SuccessRate:       r.SuccessRate,
			RecommendedAction: r.RecommendedAction,
		}
	}
	return AnalyzeResponse{
		AnalysisID:               analysisID,
		PartySuccessChance:       result.PartySuccessChance,
		IndividualSuccessRates:   rates,
		EncounterDifficulty:      result.EncounterDifficulty,
		StrategicRecommendations: result.StrategicRecommendations,
	}
}

func toRecordResponse(rec *analysisrecord.Record) RecordResponse {
	return RecordResponse{
		AnalysisID: rec.ID,
		EntityID:   rec.EntityID,
		EventType:  string(rec.EventType),
		PartySize:  rec.PartySize,
		Strategy:   rec.Strategy,
		Result:     toAnalyzeResponse(rec.ID, rec.Result),
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
	}
}
