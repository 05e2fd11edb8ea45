// Package analysis implements the analysis orchestrator, the single
// facade the API layer calls to turn a party and an encounter into a
// strategic analysis.
package analysis

//go:generate mockgen -destination=mock/mock_service.go -package=analysismock github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/orchestrators/analysis Service

import (
	"context"
	"log/slog"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/pkg/idgen"
	analysisrecord "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/repositories/analysis_record"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/rules"
)

// Sentinel response for an empty party: averaging formulas have no
// meaningful input, so the analysis reports pure uncertainty instead of
// dividing by zero.
const (
	sentinelChance     = 50
	sentinelDifficulty = "Unknown"
)

const sentinelRecommendation = "Recruit at least one adventurer before planning this encounter."

// Service defines the interface for analysis operations
type Service interface {
	// AnalyzeEncounter runs the full strategic analysis for a party and
	// encounter snapshot
	AnalyzeEncounter(ctx context.Context, input *AnalyzeEncounterInput) (*AnalyzeEncounterOutput, error)

	// GetAnalysis retrieves a stored analysis by ID
	GetAnalysis(ctx context.Context, input *GetAnalysisInput) (*GetAnalysisOutput, error)

	// ListAnalyses returns an entity's analysis history, newest first
	ListAnalyses(ctx context.Context, input *ListAnalysesInput) (*ListAnalysesOutput, error)

	// DeleteAnalysis removes a stored analysis
	DeleteAnalysis(ctx context.Context, input *DeleteAnalysisInput) (*DeleteAnalysisOutput, error)
}

// Config holds the dependencies for the analysis orchestrator
type Config struct {
	Estimator   engine.Estimator
	RecordRepo  analysisrecord.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Estimator == nil {
		vb.RequiredField("Estimator")
	}
	if c.RecordRepo == nil {
		vb.RequiredField("RecordRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	estimator  engine.Estimator
	recordRepo analysisrecord.Repository
	idGen      idgen.Generator
}

// NewOrchestrator creates a new analysis orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		estimator:  cfg.Estimator,
		recordRepo: cfg.RecordRepo,
		idGen:      cfg.IDGenerator,
	}, nil
}

// AnalyzeEncounter validates the request, runs the configured
// estimation strategy, derives per-character rates, actions, and
// narration, and stores a history record. Each call works on its own
// snapshot; nothing is shared between concurrent analyses.
func (o *orchestrator) AnalyzeEncounter(ctx context.Context, input *AnalyzeEncounterInput) (*AnalyzeEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Party == nil {
		return nil, errors.InvalidArgument("party is required")
	}
	if input.Encounter == nil {
		return nil, errors.InvalidArgument("encounter is required")
	}

	if len(input.Party) == 0 {
		return &AnalyzeEncounterOutput{Result: emptyPartyResult()}, nil
	}

	eventType := input.Encounter.EventType

	estimate, err := o.estimator.Estimate(ctx, &engine.EstimateInput{
		Party:     input.Party,
		Encounter: input.Encounter,
	})
	if err != nil {
		return nil, errors.Wrap(err, "estimation failed")
	}

	rates := make([]entities.IndividualRate, len(input.Party))
	for i, c := range input.Party {
		rates[i] = entities.IndividualRate{
			Character:         c.Name,
			SuccessRate:       rules.SuccessRate(c, eventType),
			RecommendedAction: rules.RecommendAction(c, eventType),
		}
	}

	result := &entities.AnalysisResult{
		PartySuccessChance:       estimate.SuccessChance,
		EncounterDifficulty:      rules.DifficultyLabel(eventType),
		IndividualRates:          rates,
		StrategicRecommendations: rules.Narrate(input.Party, eventType, estimate.SuccessChance),
	}

	analysisID := o.storeRecord(ctx, input, result)

	slog.Info("Encounter analysis completed",
		"analysis_id", analysisID,
		"event_type", eventType,
		"party_size", len(input.Party),
		"strategy", o.estimator.Name(),
		"success_chance", estimate.SuccessChance,
	)

	return &AnalyzeEncounterOutput{
		AnalysisID: analysisID,
		Result:     result,
	}, nil
}

// storeRecord persists the history record best-effort: a storage outage
// must not discard an already-computed analysis. Returns the empty
// string when storage failed.
func (o *orchestrator) storeRecord(ctx context.Context, input *AnalyzeEncounterInput, result *entities.AnalysisResult) string {
	record := &analysisrecord.Record{
		ID:        o.idGen.Generate(),
		EntityID:  input.EntityID,
		EventType: input.Encounter.EventType,
		PartySize: int32(len(input.Party)), // nolint:gosec // party sizes are small
		Strategy:  o.estimator.Name(),
		Result:    result,
	}

	if _, err := o.recordRepo.Create(ctx, analysisrecord.CreateInput{Record: record}); err != nil {
		slog.Warn("Failed to store analysis record",
			"analysis_id", record.ID,
			"error", err,
		)
		return ""
	}

	return record.ID
}

// GetAnalysis retrieves a stored analysis by ID
func (o *orchestrator) GetAnalysis(ctx context.Context, input *GetAnalysisInput) (*GetAnalysisOutput, error) {
	if input == nil || input.AnalysisID == "" {
		return nil, errors.InvalidArgument("analysis ID is required")
	}

	out, err := o.recordRepo.Get(ctx, analysisrecord.GetInput{ID: input.AnalysisID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get analysis record")
	}

	return &GetAnalysisOutput{Record: out.Record}, nil
}

// ListAnalyses returns an entity's analysis history, newest first
func (o *orchestrator) ListAnalyses(ctx context.Context, input *ListAnalysesInput) (*ListAnalysesOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	out, err := o.recordRepo.List(ctx, analysisrecord.ListInput{
		EntityID: input.EntityID,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analysis records")
	}

	return &ListAnalysesOutput{Records: out.Records}, nil
}

// DeleteAnalysis removes a stored analysis
func (o *orchestrator) DeleteAnalysis(ctx context.Context, input *DeleteAnalysisInput) (*DeleteAnalysisOutput, error) {
	if input == nil || input.AnalysisID == "" {
		return nil, errors.InvalidArgument("analysis ID is required")
	}

	out, err := o.recordRepo.Delete(ctx, analysisrecord.DeleteInput{ID: input.AnalysisID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete analysis record")
	}

	slog.Info("Analysis record deleted",
		"analysis_id", input.AnalysisID,
		"deleted", out.Deleted,
	)

	return &DeleteAnalysisOutput{Deleted: out.Deleted}, nil
}

func emptyPartyResult() *entities.AnalysisResult {
	return &entities.AnalysisResult{
		PartySuccessChance:       sentinelChance,
		EncounterDifficulty:      sentinelDifficulty,
		IndividualRates:          []entities.IndividualRate{},
		StrategicRecommendations: []string{sentinelRecommendation},
	}
}
