// Package v1 exposes the analysis service over a JSON HTTP API
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/orchestrators/analysis"
)

// HandlerConfig holds dependencies for the analysis handler
type HandlerConfig struct {
	AnalysisService analysis.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.AnalysisService == nil {
		return errors.InvalidArgument("analysis service is required")
	}
	return nil
}

// Handler implements the v1 analysis HTTP API
type Handler struct {
	service analysis.Service
}

// NewHandler creates a new analysis handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.AnalysisService}, nil
}

// Register attaches the v1 routes to the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/analysis", h.analyzeEncounter)
	mux.HandleFunc("GET /v1/analysis/{id}", h.getAnalysis)
	mux.HandleFunc("DELETE /v1/analysis/{id}", h.deleteAnalysis)
	mux.HandleFunc("GET /v1/analysis", h.listAnalyses)
}

// analyzeEncounter handles POST /v1/analysis
func (h *Handler) analyzeEncounter(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.InvalidArgument("request body must be valid JSON"))
		return
	}

	if err := validateAnalyzeRequest(&req); err != nil {
		errors.WriteError(w, err)
		return
	}

	party := make([]*entities.Character, len(req.Party))
	for i, p := range req.Party {
		party[i] = toCharacter(p)
	}

	out, err := h.service.AnalyzeEncounter(r.Context(), &analysis.AnalyzeEncounterInput{
		EntityID:             req.EntityID,
		Party:                party,
		Encounter:            toEncounter(req.Encounter),
		CurrentTurnCharacter: req.CurrentTurnCharacter,
	})
	if err != nil {
		errors.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalyzeResponse(out.AnalysisID, out.Result))
}

// getAnalysis handles GET /v1/analysis/{id}
func (h *Handler) getAnalysis(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetAnalysis(r.Context(), &analysis.GetAnalysisInput{
		AnalysisID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(out.Record))
}

// deleteAnalysis handles DELETE /v1/analysis/{id}
func (h *Handler) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.DeleteAnalysis(r.Context(), &analysis.DeleteAnalysisInput{
		AnalysisID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteAnalysisResponse{Deleted: out.Deleted})
}

// listAnalyses handles GET /v1/analysis?entity_id=...&limit=...
func (h *Handler) listAnalyses(w http.ResponseWriter, r *http.Request) {
	entityID := r.URL.Query().Get("entity_id")
	if entityID == "" {
		errors.WriteError(w, errors.InvalidArgument("entity_id query parameter is required"))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			errors.WriteError(w, errors.InvalidArgument("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	out, err := h.service.ListAnalyses(r.Context(), &analysis.ListAnalysesInput{
		EntityID: entityID,
		Limit:    limit,
	})
	if err != nil {
		errors.WriteError(w, err)
		return
	}

	resp := ListAnalysesResponse{Analyses: make([]RecordResponse, len(out.Records))}
	for i, rec := range out.Records {
		resp.Analyses[i] = toRecordResponse(rec)
	}

	writeJSON(w, http.StatusOK, resp)
}

// validateAnalyzeRequest enforces the request contract before any
// computation starts. An empty (but present) party is allowed through;
// the orchestrator answers it with the sentinel result.
func validateAnalyzeRequest(req *AnalyzeRequest) error {
	vb := errors.NewValidationBuilder()

	if req.Party == nil {
		vb.RequiredField("party")
	}
	if req.Encounter == nil {
		vb.RequiredField("encounter")
	} else if req.Encounter.Enemy != nil && req.Encounter.Enemy.Health <= 0 {
		vb.InvalidField("encounter.enemy.health", "must be positive")
	}

	return vb.Build()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
