package analysis

import (
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	analysisrecord "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/repositories/analysis_record"
)

// AnalyzeEncounterInput defines the request for a strategic analysis.
// CurrentTurnCharacter is accepted for forward compatibility but does
// not influence the estimation math.
type AnalyzeEncounterInput struct {
	// EntityID identifies the requester for the history index; optional
	EntityID             string
	Party                []*entities.Character
	Encounter            *entities.Encounter
	CurrentTurnCharacter string
}

// AnalyzeEncounterOutput defines the response for a strategic analysis.
// AnalysisID is empty when the history store was unavailable; the
// result itself is still valid.
type AnalyzeEncounterOutput struct {
	AnalysisID string
	Result     *entities.AnalysisResult
}

// GetAnalysisInput defines the request for a stored analysis
type GetAnalysisInput struct {
	AnalysisID string
}

// GetAnalysisOutput contains the stored analysis record
type GetAnalysisOutput struct {
	Record *analysisrecord.Record
}

// ListAnalysesInput defines the request for an entity's analysis history
type ListAnalysesInput struct {
	EntityID string
	Limit    int
}

// ListAnalysesOutput contains the entity's records, newest first
type ListAnalysesOutput struct {
	Records []*analysisrecord.Record
}

// DeleteAnalysisInput defines the request to remove a stored analysis
type DeleteAnalysisInput struct {
	AnalysisID string
}

// DeleteAnalysisOutput reports whether a record was removed
type DeleteAnalysisOutput struct {
	Deleted bool
}
