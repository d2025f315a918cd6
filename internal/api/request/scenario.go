package request

import "github.com/sageplan/sage-backend/internal/model"

// ProjectScenarioRequest represents the request body for running a scenario projection
type ProjectScenarioRequest struct {
	ScenarioDescription string `json:"scenario_description"`
	TimeframeMonths     int    `json:"timeframe_months"`
}

// SaveScenarioRequest represents the request body for saving a completed projection
type SaveScenarioRequest struct {
	Name             string                           `json:"name"`
	Description      string                           `json:"description"`
	TimeframeMonths  int                              `json:"timeframe_months"`
	ProjectionResult model.ScenarioProjectionResponse `json:"projection_result"`
}

// ScenarioConsentRequest represents the request body for recording a share consent decision
type ScenarioConsentRequest struct {
	AdvisorID           string         `json:"advisor_id"`
	ScenarioDescription string         `json:"scenario_description"`
	ConsentStatus       string         `json:"consent_status"`
	Analysis            map[string]any `json:"analysis,omitempty"`
}
