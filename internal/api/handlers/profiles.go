package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sageplan/sage-backend/internal/service"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	portfolioService *service.PortfolioService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(portfolioService *service.PortfolioService) *ProfileHandler {
	return &ProfileHandler{
		portfolioService: portfolioService,
	}
}

// ProfileResponse represents one client profile in API responses
type ProfileResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Age                 int     `json:"age"`
	Salary              float64 `json:"salary"`
	CurrentCash         float64 `json:"current_cash"`
	InvestmentAssets    float64 `json:"investment_assets"`
	YearlySavingsRate   float64 `json:"yearly_savings_rate"`
	RiskAppetite        string  `json:"risk_appetite"`
	TargetRetireAge     int     `json:"target_retire_age"`
	TargetMonthlyIncome float64 `json:"target_monthly_income"`
	Description         string  `json:"description,omitempty"`
	AdvisorID           string  `json:"advisor_id,omitempty"`
}

// Profiles handles GET requests for the full profile list.
//
// Endpoint: GET /api/profiles
func (h *ProfileHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.portfolioService.GetProfiles()
	if err != nil {
		respondServiceError(w, "Failed to retrieve profiles", err)
		return
	}

	response := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		response[i] = ProfileResponse{
			ID:                  p.ID,
			Name:                p.Name,
			Age:                 p.Age,
			Salary:              p.Salary,
			CurrentCash:         p.CurrentCash,
			InvestmentAssets:    p.InvestmentAssets,
			YearlySavingsRate:   p.YearlySavingsRate,
			RiskAppetite:        string(p.RiskAppetite),
			TargetRetireAge:     p.TargetRetireAge,
			TargetMonthlyIncome: p.TargetMonthlyIncome,
			Description:         p.Description,
			AdvisorID:           p.AdvisorID,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// Profile handles GET requests for a single profile.
//
// Endpoint: GET /api/profiles/{profileId}
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileId")

	p, err := h.portfolioService.GetProfile(profileID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve profile", err)
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Age:                 p.Age,
		Salary:              p.Salary,
		CurrentCash:         p.CurrentCash,
		InvestmentAssets:    p.InvestmentAssets,
		YearlySavingsRate:   p.YearlySavingsRate,
		RiskAppetite:        string(p.RiskAppetite),
		TargetRetireAge:     p.TargetRetireAge,
		TargetMonthlyIncome: p.TargetMonthlyIncome,
		Description:         p.Description,
		AdvisorID:           p.AdvisorID,
	})
}
