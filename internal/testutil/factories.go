package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sageplan/sage-backend/internal/model"
)

// MakeID generates a unique ID for test entities.
func MakeID() string {
	return uuid.New().String()
}

// ProfileBuilder provides a fluent interface for creating test profiles.
//
// Example usage:
//
//	// Simple creation with defaults
//	profile := testutil.NewProfile().Build(t, db)
//
//	// Customized profile
//	profile := testutil.NewProfile().
//	    WithAge(58).
//	    WithRiskAppetite(model.RiskLow).
//	    Build(t, db)
type ProfileBuilder struct {
	ID                  string
	Name                string
	Age                 int
	Salary              float64
	CurrentCash         float64
	InvestmentAssets    float64
	YearlySavingsRate   float64
	RiskAppetite        model.RiskAppetite
	TargetRetireAge     int
	TargetMonthlyIncome float64
	Description         string
	AdvisorID           string
}

// NewProfile creates a ProfileBuilder with sensible defaults.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		ID:                  MakeID(),
		Name:                "Test Client",
		Age:                 42,
		Salary:              125000,
		YearlySavingsRate:   0.15,
		RiskAppetite:        model.RiskMedium,
		TargetRetireAge:     65,
		TargetMonthlyIncome: 5000,
		AdvisorID:           MakeID(),
	}
}

// WithID sets a custom ID.
func (b *ProfileBuilder) WithID(id string) *ProfileBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.Name = name
	return b
}

// WithAge sets a custom age.
func (b *ProfileBuilder) WithAge(age int) *ProfileBuilder {
	b.Age = age
	return b
}

// WithSalary sets a custom salary.
func (b *ProfileBuilder) WithSalary(salary float64) *ProfileBuilder {
	b.Salary = salary
	return b
}

// WithInvestmentAssets sets reported investment assets.
func (b *ProfileBuilder) WithInvestmentAssets(assets float64) *ProfileBuilder {
	b.InvestmentAssets = assets
	return b
}

// WithRiskAppetite sets the risk appetite.
func (b *ProfileBuilder) WithRiskAppetite(risk model.RiskAppetite) *ProfileBuilder {
	b.RiskAppetite = risk
	return b
}

// WithAdvisorID sets the advisor relationship.
func (b *ProfileBuilder) WithAdvisorID(advisorID string) *ProfileBuilder {
	b.AdvisorID = advisorID
	return b
}

// Build creates the profile in the database and returns it.
func (b *ProfileBuilder) Build(t *testing.T, db *sql.DB) model.UserProfile {
	t.Helper()

	query := `
		INSERT INTO profile (id, name, age, salary, current_cash, investment_assets,
			yearly_savings_rate, risk_appetite, target_retire_age, target_monthly_income,
			description, advisor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Age, b.Salary, b.CurrentCash, b.InvestmentAssets,
		b.YearlySavingsRate, string(b.RiskAppetite), b.TargetRetireAge, b.TargetMonthlyIncome,
		b.Description, b.AdvisorID)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return model.UserProfile{
		ID:                  b.ID,
		Name:                b.Name,
		Age:                 b.Age,
		Salary:              b.Salary,
		CurrentCash:         b.CurrentCash,
		InvestmentAssets:    b.InvestmentAssets,
		YearlySavingsRate:   b.YearlySavingsRate,
		RiskAppetite:        b.RiskAppetite,
		TargetRetireAge:     b.TargetRetireAge,
		TargetMonthlyIncome: b.TargetMonthlyIncome,
		Description:         b.Description,
		AdvisorID:           b.AdvisorID,
	}
}

// Convenience functions

// CreateProfile creates a profile with the given name and default values.
func CreateProfile(t *testing.T, db *sql.DB, name string) model.UserProfile {
	t.Helper()
	return NewProfile().WithName(name).Build(t, db)
}

// SampleProjectionResponse returns a small but structurally complete
// projection response for persistence tests.
func SampleProjectionResponse(totalChangePercent float64) model.ScenarioProjectionResponse {
	return model.ScenarioProjectionResponse{
		Projection: model.ProjectionResult{
			TotalValue:         110000,
			TotalChange:        10000,
			TotalChangePercent: totalChangePercent,
			Accounts:           []model.ProjectedAccount{},
			Holdings:           []model.ProjectedHolding{},
		},
		Assumptions: model.ProjectionAssumptions{
			MarketReturnAnnual:    0.07,
			InflationRate:         0.025,
			ContributionLimit401k: 23000,
			ContributionLimitIRA:  7000,
		},
		Summary: "Test projection summary",
		Risks: []model.ScenarioRisk{
			{Title: "Market volatility", Detail: "Short horizon amplifies drawdowns", Severity: "medium"},
		},
		Opportunities: []model.ScenarioOpportunity{
			{Title: "Contribution headroom", Detail: "Room left under the 401(k) limit", Impact: "high"},
		},
	}
}

// CreateSavedScenario inserts a saved scenario directly.
func CreateSavedScenario(t *testing.T, db *sql.DB, userID, name string, createdAt time.Time) model.SavedScenario {
	t.Helper()

	scenario := model.SavedScenario{
		ID:               MakeID(),
		UserID:           userID,
		Name:             name,
		Description:      "What if I retire early?",
		TimeframeMonths:  12,
		ProjectionResult: SampleProjectionResponse(9.1),
		CreatedAt:        createdAt.UTC(),
	}

	projectionJSON, err := json.Marshal(scenario.ProjectionResult)
	if err != nil {
		t.Fatalf("Failed to marshal projection: %v", err)
	}

	query := `
		INSERT INTO saved_scenario (id, user_id, name, description, timeframe_months, projection_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = db.Exec(query, scenario.ID, scenario.UserID, scenario.Name, scenario.Description,
		scenario.TimeframeMonths, string(projectionJSON), scenario.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test scenario: %v", err)
	}

	return scenario
}

// CreateShare inserts a scenario share record directly.
func CreateShare(t *testing.T, db *sql.DB, userID, advisorID, status string, createdAt time.Time) model.ScenarioShare {
	t.Helper()

	share := model.ScenarioShare{
		ID:                  MakeID(),
		UserID:              userID,
		AdvisorID:           advisorID,
		ScenarioDescription: "What if the market drops 20%?",
		AnalysisPayload:     map[string]any{"headline": "Recoverable within the timeframe"},
		ConsentStatus:       status,
		CreatedAt:           createdAt.UTC(),
	}

	analysisJSON, err := json.Marshal(share.AnalysisPayload)
	if err != nil {
		t.Fatalf("Failed to marshal analysis: %v", err)
	}

	query := `
		INSERT INTO scenario_share (id, user_id, advisor_id, scenario_description, analysis_json, consent_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = db.Exec(query, share.ID, share.UserID, share.AdvisorID, share.ScenarioDescription,
		string(analysisJSON), share.ConsentStatus, share.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test share: %v", err)
	}

	return share
}
