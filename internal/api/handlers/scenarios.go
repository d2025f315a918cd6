package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sageplan/sage-backend/internal/api/request"
	"github.com/sageplan/sage-backend/internal/model"
	"github.com/sageplan/sage-backend/internal/service"
)

// ScenarioHandler handles scenario-related HTTP requests
type ScenarioHandler struct {
	scenarioService *service.ScenarioService
}

// NewScenarioHandler creates a new ScenarioHandler
func NewScenarioHandler(scenarioService *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioService: scenarioService,
	}
}

// Project handles POST requests to run a scenario projection. A newer
// submission for the same profile supersedes any projection still in
// flight; a superseded result is discarded and answered with 409.
//
// Endpoint: POST /api/scenarios/{userId}/project
// Response: 200 OK with the projection response and baseline comparison
func (h *ScenarioHandler) Project(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req request.ProjectScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	outcome, err := h.scenarioService.Project(r.Context(), userID, req.ScenarioDescription, req.TimeframeMonths)
	if err != nil {
		respondServiceError(w, "Failed to project scenario", err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// QuickScenariosResponse wraps the preset prompt list
type QuickScenariosResponse struct {
	Scenarios []string `json:"scenarios"`
}

// QuickScenarios handles GET requests for the preset scenario prompts.
//
// Endpoint: GET /api/scenarios/quick
func (h *ScenarioHandler) QuickScenarios(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, QuickScenariosResponse{
		Scenarios: h.scenarioService.QuickScenarios(),
	})
}

// Overview handles GET requests for the combined scenario overview: saved
// scenario summaries plus analyses shared with the advisor.
//
// Endpoint: GET /api/scenarios/{userId}/overview
func (h *ScenarioHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	overview, err := h.scenarioService.Overview(r.Context(), userID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve scenario overview", err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// SaveScenarioResponse carries the generated scenario ID
type SaveScenarioResponse struct {
	ID string `json:"id"`
}

// SaveScenario handles POST requests to persist a completed projection.
//
// Endpoint: POST /api/scenarios/{userId}
// Response: 201 Created with the new scenario ID
func (h *ScenarioHandler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req request.SaveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	scenario, err := h.scenarioService.SaveScenario(userID, req.Name, req.Description, req.TimeframeMonths, req.ProjectionResult)
	if err != nil {
		respondServiceError(w, "Failed to save scenario", err)
		return
	}

	respondJSON(w, http.StatusCreated, SaveScenarioResponse{ID: scenario.ID})
}

// ListScenarios handles GET requests for a user's saved scenarios.
//
// Endpoint: GET /api/scenarios/{userId}
func (h *ScenarioHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	summaries, err := h.scenarioService.ListScenarios(userID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve scenarios", err)
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}

// SavedScenarioResponse is the full detail view of one saved scenario
type SavedScenarioResponse struct {
	ID               string                           `json:"id"`
	Name             string                           `json:"name"`
	Description      string                           `json:"description"`
	TimeframeMonths  int                              `json:"timeframe_months"`
	ProjectionResult model.ScenarioProjectionResponse `json:"projection_result"`
	CreatedAt        time.Time                        `json:"created_at"`
}

// GetScenario handles GET requests for one saved scenario with its full
// projection.
//
// Endpoint: GET /api/scenarios/{userId}/{scenarioId}
func (h *ScenarioHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	scenarioID := chi.URLParam(r, "scenarioId")

	scenario, err := h.scenarioService.GetScenario(userID, scenarioID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve scenario", err)
		return
	}

	respondJSON(w, http.StatusOK, SavedScenarioResponse{
		ID:               scenario.ID,
		Name:             scenario.Name,
		Description:      scenario.Description,
		TimeframeMonths:  scenario.TimeframeMonths,
		ProjectionResult: scenario.ProjectionResult,
		CreatedAt:        scenario.CreatedAt,
	})
}

// DeleteScenario handles DELETE requests for a saved scenario.
//
// Endpoint: DELETE /api/scenarios/{userId}/{scenarioId}
func (h *ScenarioHandler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	scenarioID := chi.URLParam(r, "scenarioId")

	if err := h.scenarioService.DeleteScenario(userID, scenarioID); err != nil {
		respondServiceError(w, "Failed to delete scenario", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ConsentResponse carries the stored share record and, for accepted
// consents, the signed access token
type ConsentResponse struct {
	Share model.ScenarioShare `json:"share"`
	Token string              `json:"token,omitempty"`
}

// Consent handles POST requests recording a client's decision on sharing a
// scenario analysis with their advisor.
//
// Endpoint: POST /api/scenario-consent/{userId}
func (h *ScenarioHandler) Consent(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req request.ScenarioConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	share, token, err := h.scenarioService.RecordConsent(userID, req.AdvisorID, req.ScenarioDescription, req.ConsentStatus, req.Analysis)
	if err != nil {
		respondServiceError(w, "Failed to record consent", err)
		return
	}

	respondJSON(w, http.StatusCreated, ConsentResponse{Share: share, Token: token})
}

// SharedScenarios handles GET requests for the accepted shares an advisor
// can see for one client.
//
// Endpoint: GET /api/shared-scenarios/{advisorId}/{clientId}
func (h *ScenarioHandler) SharedScenarios(w http.ResponseWriter, r *http.Request) {
	advisorID := chi.URLParam(r, "advisorId")
	clientID := chi.URLParam(r, "clientId")

	shares, err := h.scenarioService.ListSharedScenarios(advisorID, clientID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve shared scenarios", err)
		return
	}

	respondJSON(w, http.StatusOK, shares)
}

// ShareByToken handles GET requests resolving a signed share token.
// Invalid or expired tokens are indistinguishable from missing shares.
//
// Endpoint: GET /api/shared-scenarios/token/{token}
func (h *ScenarioHandler) ShareByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	share, err := h.scenarioService.GetShareByToken(token)
	if err != nil {
		respondServiceError(w, "Failed to resolve share token", err)
		return
	}

	respondJSON(w, http.StatusOK, share)
}
