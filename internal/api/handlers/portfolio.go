package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sageplan/sage-backend/internal/service"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Portfolio handles GET requests for the full dashboard payload. The
// portfolio is synthesized from the profile on every request; identical
// profiles always produce identical payloads.
//
// Endpoint: GET /api/portfolio/{profileId}
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileId")

	portfolio, err := h.portfolioService.GetPortfolio(profileID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve portfolio", err)
		return
	}

	respondJSON(w, http.StatusOK, portfolio)
}

// PerformancePointResponse is one sample of the performance series
type PerformancePointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Performance handles GET requests for the synthetic performance series.
// The range query parameter selects a preset window (1W, 1M, 3M, 1Y, ALL)
// and defaults to 1M.
//
// Endpoint: GET /api/portfolio/{profileId}/performance?range=3M
func (h *PortfolioHandler) Performance(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileId")

	rangeName := r.URL.Query().Get("range")
	if rangeName == "" {
		rangeName = "1M"
	}

	series, err := h.portfolioService.GetPerformanceSeries(profileID, rangeName)
	if err != nil {
		respondServiceError(w, "Failed to generate performance series", err)
		return
	}

	response := make([]PerformancePointResponse, len(series))
	for i, p := range series {
		response[i] = PerformancePointResponse{
			Date:  p.Date.Format(time.DateOnly),
			Value: p.Value,
		}
	}

	respondJSON(w, http.StatusOK, response)
}
