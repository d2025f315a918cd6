// Package projection holds the contract boundary with the external
// reasoning service that produces scenario projections: the HTTP client for
// live mode, a deterministic local projector for demo mode, and the request
// sequencer that suppresses stale responses.
package projection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sageplan/sage-backend/internal/model"
	"github.com/sageplan/sage-backend/internal/validation"
)

// Client produces a scenario projection for a validated request. The two
// implementations are selected at construction time from configuration;
// there is no process-wide mode flag.
type Client interface {
	ProjectScenario(ctx context.Context, req model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error)
}

// HTTPClient calls the reasoning service over HTTP. It performs no
// computation of its own beyond request validation and response decoding;
// the structured response is surfaced as-is.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a reasoning-service client. Projections can take a
// while to generate, so the default timeout is generous; cancellation is
// driven by the caller's context.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// ProjectScenario posts the scenario request and decodes the structured
// projection. Validation failures are returned before any network call.
func (c *HTTPClient) ProjectScenario(ctx context.Context, req model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error) {
	if err := validation.ValidateScenarioRequest(req); err != nil {
		return model.ScenarioProjectionResponse{}, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return model.ScenarioProjectionResponse{}, fmt.Errorf("failed to marshal projection request: %w", err)
	}

	url := fmt.Sprintf("%s/project-scenario", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return model.ScenarioProjectionResponse{}, fmt.Errorf("failed to create projection request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return model.ScenarioProjectionResponse{}, fmt.Errorf("projection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return model.ScenarioProjectionResponse{}, fmt.Errorf("projection service returned %d: %s", resp.StatusCode, payload)
	}

	var result model.ScenarioProjectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.ScenarioProjectionResponse{}, fmt.Errorf("failed to decode projection response: %w", err)
	}

	return result, nil
}
