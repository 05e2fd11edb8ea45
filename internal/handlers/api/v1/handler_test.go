package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
	v1 "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/handlers/api/v1"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/orchestrators/analysis"
	analysismock "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/orchestrators/analysis/mock"
	analysisrecord "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/repositories/analysis_record"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *analysismock.MockService
	mux         *http.ServeMux
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = analysismock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.HandlerConfig{AnalysisService: s.mockService})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

const analyzeBody = `{
	"entity_id": "session_1",
	"party": [
		{"name": "Ragnar", "type": "Barbarian", "strength": 30, "agility": 10, "health": 40},
		{"name": "Elara", "type": "Mage", "strength": 5, "agility": 12, "health": 15, "mana": 35, "wisdom": 28}
	],
	"encounter": {"event_type": "Dragon Fight", "enemy": {"name": "Wyrm", "health": 120}}
}`

func (s *HandlerTestSuite) TestAnalyzeEncounter() {
	s.mockService.EXPECT().
		AnalyzeEncounter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *analysis.AnalyzeEncounterInput) (*analysis.AnalyzeEncounterOutput, error) {
			s.Assert().Equal("session_1", input.EntityID)
			s.Require().Len(input.Party, 2)
			s.Assert().Equal("Ragnar", input.Party[0].Name)
			s.Assert().Equal(entities.ClassBarbarian, input.Party[0].Class)
			s.Assert().Equal(int32(35), input.Party[1].Mana)
			s.Require().NotNil(input.Encounter)
			s.Assert().Equal(entities.EncounterDragonFight, input.Encounter.EventType)
			s.Require().NotNil(input.Encounter.Enemy)
			s.Assert().Equal(int32(120), input.Encounter.Enemy.Health)

			return &analysis.AnalyzeEncounterOutput{
				AnalysisID: "analysis_1",
				Result: &entities.AnalysisResult{
					PartySuccessChance:  62,
					EncounterDifficulty: "Hard",
					IndividualRates: []entities.IndividualRate{
						{Character: "Ragnar", SuccessRate: 70, RecommendedAction: "Power Attack"},
						{Character: "Elara", SuccessRate: 45, RecommendedAction: "Cast Fireball"},
					},
					StrategicRecommendations: []string{"A balanced approach is recommended."},
				},
			}, nil
		})

	rec := s.do(http.MethodPost, "/v1/analysis", analyzeBody)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp v1.AnalyzeResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Assert().Equal("analysis_1", resp.AnalysisID)
	s.Assert().Equal(int32(62), resp.PartySuccessChance)
	s.Assert().Equal("Hard", resp.EncounterDifficulty)
	s.Require().Len(resp.IndividualSuccessRates, 2)
	s.Assert().Equal("Ragnar", resp.IndividualSuccessRates[0].Character)
	s.Assert().Equal("Power Attack", resp.IndividualSuccessRates[0].RecommendedAction)
	s.Assert().Len(resp.StrategicRecommendations, 1)
}

func (s *HandlerTestSuite) TestAnalyzeEncounterBadJSON() {
	rec := s.do(http.MethodPost, "/v1/analysis", `{"party": [`)
	s.Assert().Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestAnalyzeEncounterMissingParty() {
	rec := s.do(http.MethodPost, "/v1/analysis", `{"encounter": {"event_type": "Dragon Fight"}}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Contains(rec.Body.String(), "party")
}

func (s *HandlerTestSuite) TestAnalyzeEncounterMissingEncounter() {
	rec := s.do(http.MethodPost, "/v1/analysis", `{"party": []}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Contains(rec.Body.String(), "encounter")
}

func (s *HandlerTestSuite) TestAnalyzeEncounterInvalidEnemyHealth() {
	body := `{"party": [], "encounter": {"event_type": "Dragon Fight", "enemy": {"name": "Wyrm", "health": 0}}}`
	rec := s.do(http.MethodPost, "/v1/analysis", body)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Contains(rec.Body.String(), "enemy.health")
}

func (s *HandlerTestSuite) TestAnalyzeEncounterEmptyPartyIsAccepted() {
	// Present-but-empty party reaches the service, which answers with
	// the sentinel result
	s.mockService.EXPECT().
		AnalyzeEncounter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *analysis.AnalyzeEncounterInput) (*analysis.AnalyzeEncounterOutput, error) {
			s.Assert().NotNil(input.Party)
			s.Assert().Empty(input.Party)
			return &analysis.AnalyzeEncounterOutput{
				Result: &entities.AnalysisResult{
					PartySuccessChance:       50,
					EncounterDifficulty:      "Unknown",
					IndividualRates:          []entities.IndividualRate{},
					StrategicRecommendations: []string{"Recruit at least one adventurer before planning this encounter."},
				},
			}, nil
		})

	rec := s.do(http.MethodPost, "/v1/analysis", `{"party": [], "encounter": {"event_type": "Dragon Fight"}}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp v1.AnalyzeResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Assert().Equal(int32(50), resp.PartySuccessChance)
	s.Assert().Equal("Unknown", resp.EncounterDifficulty)
	s.Assert().Empty(resp.IndividualSuccessRates)
}

func (s *HandlerTestSuite) TestGetAnalysis() {
	record := &analysisrecord.Record{
		ID:        "analysis_1",
		EntityID:  "session_1",
		EventType: entities.EncounterAncientTrap,
		PartySize: 2,
		Strategy:  "montecarlo",
		Result: &entities.AnalysisResult{
			PartySuccessChance:  71,
			EncounterDifficulty: "Medium",
		},
	}
	s.mockService.EXPECT().
		GetAnalysis(gomock.Any(), &analysis.GetAnalysisInput{AnalysisID: "analysis_1"}).
		Return(&analysis.GetAnalysisOutput{Record: record}, nil)

	rec := s.do(http.MethodGet, "/v1/analysis/analysis_1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp v1.RecordResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Assert().Equal("analysis_1", resp.AnalysisID)
	s.Assert().Equal("Ancient Trap", resp.EventType)
	s.Assert().Equal("montecarlo", resp.Strategy)
	s.Assert().Equal(int32(71), resp.Result.PartySuccessChance)
}

func (s *HandlerTestSuite) TestGetAnalysisNotFound() {
	s.mockService.EXPECT().
		GetAnalysis(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("analysis record not found"))

	rec := s.do(http.MethodGet, "/v1/analysis/missing", "")
	s.Assert().Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestListAnalyses() {
	records := []*analysisrecord.Record{
		{ID: "analysis_2", Result: &entities.AnalysisResult{PartySuccessChance: 60}},
		{ID: "analysis_1", Result: &entities.AnalysisResult{PartySuccessChance: 40}},
	}
	s.mockService.EXPECT().
		ListAnalyses(gomock.Any(), &analysis.ListAnalysesInput{EntityID: "session_1", Limit: 5}).
		Return(&analysis.ListAnalysesOutput{Records: records}, nil)

	rec := s.do(http.MethodGet, "/v1/analysis?entity_id=session_1&limit=5", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp v1.ListAnalysesResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Require().Len(resp.Analyses, 2)
	s.Assert().Equal("analysis_2", resp.Analyses[0].AnalysisID)
	s.Assert().Equal("analysis_1", resp.Analyses[1].AnalysisID)
}

func (s *HandlerTestSuite) TestListAnalysesRequiresEntityID() {
	rec := s.do(http.MethodGet, "/v1/analysis", "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Contains(rec.Body.String(), "entity_id")
}

func (s *HandlerTestSuite) TestListAnalysesRejectsBadLimit() {
	for _, limit := range []string{"abc", "-1", "0"} {
		rec := s.do(http.MethodGet, "/v1/analysis?entity_id=session_1&limit="+limit, "")
		s.Assert().Equal(http.StatusBadRequest, rec.Code, "limit %q", limit)
	}
}

func (s *HandlerTestSuite) TestDeleteAnalysis() {
	s.mockService.EXPECT().
		DeleteAnalysis(gomock.Any(), &analysis.DeleteAnalysisInput{AnalysisID: "analysis_1"}).
		Return(&analysis.DeleteAnalysisOutput{Deleted: true}, nil)

	rec := s.do(http.MethodDelete, "/v1/analysis/analysis_1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp v1.DeleteAnalysisResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Assert().True(resp.Deleted)
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
