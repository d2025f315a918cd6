package model

import "time"

// Scenario timeframes supported by the projection contract, in months.
var AllowedTimeframes = []int{3, 6, 12}

// ValidTimeframe reports whether the timeframe is one of the supported
// projection horizons.
func ValidTimeframe(months int) bool {
	for _, m := range AllowedTimeframes {
		if months == m {
			return true
		}
	}
	return false
}

// PortfolioSnapshotAccount is the trimmed account shape sent to the
// reasoning service as part of the current-portfolio snapshot.
type PortfolioSnapshotAccount struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// PortfolioSnapshotHolding is the trimmed holding shape sent to the
// reasoning service as part of the current-portfolio snapshot.
type PortfolioSnapshotHolding struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Allocation float64 `json:"allocation"`
}

// PortfolioSnapshot is the baseline state a projection is computed against.
type PortfolioSnapshot struct {
	TotalValue float64                    `json:"total_value"`
	Accounts   []PortfolioSnapshotAccount `json:"accounts"`
	Holdings   []PortfolioSnapshotHolding `json:"holdings"`
}

// ScenarioProjectionRequest is the payload sent to the reasoning service.
type ScenarioProjectionRequest struct {
	ProfileID           string            `json:"profile_id"`
	ScenarioDescription string            `json:"scenario_description"`
	TimeframeMonths     int               `json:"timeframe_months"`
	CurrentPortfolio    PortfolioSnapshot `json:"current_portfolio"`
}

// ProjectedAccount is the reasoning service's projection for one account,
// keyed back to the baseline by ID.
type ProjectedAccount struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CurrentValue   float64 `json:"current_value"`
	ProjectedValue float64 `json:"projected_value"`
	Change         float64 `json:"change"`
	ChangePercent  float64 `json:"change_percent"`
}

// ProjectedHolding is the reasoning service's projection for one holding,
// keyed back to the baseline by symbol.
type ProjectedHolding struct {
	Symbol              string  `json:"symbol"`
	Name                string  `json:"name"`
	CurrentValue        float64 `json:"current_value"`
	ProjectedValue      float64 `json:"projected_value"`
	CurrentAllocation   float64 `json:"current_allocation"`
	ProjectedAllocation float64 `json:"projected_allocation"`
	Change              float64 `json:"change"`
	ChangePercent       float64 `json:"change_percent"`
}

// ProjectionAssumptions records the macro assumptions behind a projection.
type ProjectionAssumptions struct {
	MarketReturnAnnual    float64 `json:"market_return_annual"`
	InflationRate         float64 `json:"inflation_rate"`
	ContributionLimit401k int     `json:"contribution_limit_401k"`
	ContributionLimitIRA  int     `json:"contribution_limit_ira"`
}

// ProjectionResult is the numeric half of a scenario projection.
type ProjectionResult struct {
	TotalValue         float64            `json:"total_value"`
	TotalChange        float64            `json:"total_change"`
	TotalChangePercent float64            `json:"total_change_percent"`
	Accounts           []ProjectedAccount `json:"accounts"`
	Holdings           []ProjectedHolding `json:"holdings"`
}

// ScenarioRisk is a structured risk called out by the reasoning service.
type ScenarioRisk struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Severity string `json:"severity"` // high, medium, low
}

// ScenarioOpportunity is a structured opportunity called out by the
// reasoning service.
type ScenarioOpportunity struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Impact string `json:"impact"` // high, medium, low
}

// ScenarioActionItem is a recommended follow-up step.
type ScenarioActionItem struct {
	Action   string `json:"action"`
	Priority string `json:"priority"` // high, medium, low
	Category string `json:"category"` // contribution, allocation, tax, planning
}

// ScenarioProjectionResponse is the full structured answer for one scenario
// submission. Immutable after creation.
type ScenarioProjectionResponse struct {
	Projection    ProjectionResult      `json:"projection"`
	Assumptions   ProjectionAssumptions `json:"assumptions"`
	Headline      string                `json:"headline,omitempty"`
	Summary       string                `json:"summary"`
	KeyFactors    []string              `json:"key_factors,omitempty"`
	Risks         []ScenarioRisk        `json:"risks"`
	Opportunities []ScenarioOpportunity `json:"opportunities"`
	ActionItems   []ScenarioActionItem  `json:"action_items,omitempty"`
}

// EntityComparison is the locally computed baseline-vs-projected delta for a
// single account or holding. Projected is false when the reasoning service
// omitted the entity; the baseline value is then displayed unchanged.
type EntityComparison struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	BaselineValue  float64 `json:"baseline_value"`
	ProjectedValue float64 `json:"projected_value"`
	Change         float64 `json:"change"`
	ChangePercent  float64 `json:"change_percent"`
	Projected      bool    `json:"projected"`
}

// ProjectionComparison reconciles a projection response against the current
// baseline, entity by entity.
type ProjectionComparison struct {
	Total    EntityComparison   `json:"total"`
	Accounts []EntityComparison `json:"accounts"`
	Holdings []EntityComparison `json:"holdings"`
}

// SavedScenario is a persisted what-if projection.
type SavedScenario struct {
	ID               string                     `json:"id"`
	UserID           string                     `json:"user_id"`
	Name             string                     `json:"name"`
	Description      string                     `json:"description"`
	TimeframeMonths  int                        `json:"timeframe_months"`
	ProjectionResult ScenarioProjectionResponse `json:"projection_result"`
	CreatedAt        time.Time                  `json:"created_at"`
}

// SavedScenarioSummary is the list-view shape for saved scenarios.
type SavedScenarioSummary struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	TimeframeMonths    int       `json:"timeframe_months"`
	TotalChangePercent float64   `json:"total_change_percent"`
	CreatedAt          time.Time `json:"created_at"`
}

// Consent statuses for advisor scenario sharing.
const (
	ConsentAccepted = "accepted"
	ConsentRejected = "rejected"
)

// ScenarioShare records a client's consent decision to share a scenario
// analysis with their advisor. Only accepted records are visible to the
// advisor.
type ScenarioShare struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"user_id"`
	AdvisorID           string         `json:"advisor_id"`
	ScenarioDescription string         `json:"scenario_description"`
	AnalysisPayload     map[string]any `json:"analysis_payload"`
	ConsentStatus       string         `json:"consent_status"`
	CreatedAt           time.Time      `json:"created_at"`
}
