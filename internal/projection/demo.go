package projection

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sageplan/sage-backend/internal/engine"
	"github.com/sageplan/sage-backend/internal/model"
	"github.com/sageplan/sage-backend/internal/validation"
)

// Demo-mode assumptions, matching what the reasoning service is prompted
// with in live mode.
const (
	demoMarketReturn = 0.07
	demoInflation    = 0.025
	demoLimit401k    = 23000
	demoLimitIRA     = 7000
)

// DemoClient computes deterministic projections locally so the full
// scenario workflow runs with no external collaborator. In demo mode no
// reasoning-service call is ever made.
type DemoClient struct{}

// NewDemoClient creates the standalone projector.
func NewDemoClient() *DemoClient {
	return &DemoClient{}
}

// ProjectScenario grows every entity by the timeframe-proportional market
// return and wraps the numbers in fixed narrative content. The same request
// always yields the same projection.
func (c *DemoClient) ProjectScenario(_ context.Context, req model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error) {
	if err := validation.ValidateScenarioRequest(req); err != nil {
		return model.ScenarioProjectionResponse{}, err
	}

	factor := math.Pow(1+demoMarketReturn, float64(req.TimeframeMonths)/12)

	snapshot := req.CurrentPortfolio
	accounts := make([]model.ProjectedAccount, len(snapshot.Accounts))
	for i, a := range snapshot.Accounts {
		projected := round2(a.Balance * factor)
		change, changePercent := engine.Diff(a.Balance, projected)
		accounts[i] = model.ProjectedAccount{
			ID:             a.ID,
			Name:           a.Name,
			CurrentValue:   a.Balance,
			ProjectedValue: projected,
			Change:         round2(change),
			ChangePercent:  round2(changePercent),
		}
	}

	holdings := make([]model.ProjectedHolding, len(snapshot.Holdings))
	for i, h := range snapshot.Holdings {
		projected := round2(h.Value * factor)
		change, changePercent := engine.Diff(h.Value, projected)
		holdings[i] = model.ProjectedHolding{
			Symbol:              h.Symbol,
			Name:                h.Name,
			CurrentValue:        h.Value,
			ProjectedValue:      projected,
			CurrentAllocation:   h.Allocation,
			ProjectedAllocation: h.Allocation, // uniform growth leaves allocations unchanged
			Change:              round2(change),
			ChangePercent:       round2(changePercent),
		}
	}

	projectedTotal := round2(snapshot.TotalValue * factor)
	totalChange, totalChangePercent := engine.Diff(snapshot.TotalValue, projectedTotal)

	return model.ScenarioProjectionResponse{
		Projection: model.ProjectionResult{
			TotalValue:         projectedTotal,
			TotalChange:        round2(totalChange),
			TotalChangePercent: round2(totalChangePercent),
			Accounts:           accounts,
			Holdings:           holdings,
		},
		Assumptions: model.ProjectionAssumptions{
			MarketReturnAnnual:    demoMarketReturn,
			InflationRate:         demoInflation,
			ContributionLimit401k: demoLimit401k,
			ContributionLimitIRA:  demoLimitIRA,
		},
		Headline: "Steady growth under baseline assumptions",
		Summary: fmt.Sprintf(
			"Assuming a %.0f%% annual market return, the portfolio grows about %.1f%% over %d months. %s",
			demoMarketReturn*100, totalChangePercent, req.TimeframeMonths,
			demoScenarioNote(req.ScenarioDescription)),
		KeyFactors: []string{
			"Baseline 7% annual market return",
			"No contribution changes modeled",
			fmt.Sprintf("%d-month compounding horizon", req.TimeframeMonths),
		},
		Risks: []model.ScenarioRisk{
			{Title: "Market volatility", Detail: "Short horizons amplify sequence risk; a drawdown within the window could erase projected gains.", Severity: "medium"},
			{Title: "Inflation drag", Detail: "At 2.5% annual inflation, real purchasing power grows more slowly than the nominal projection.", Severity: "low"},
		},
		Opportunities: []model.ScenarioOpportunity{
			{Title: "Contribution headroom", Detail: "Current 401(k) contributions sit below the annual limit; raising them compounds over the horizon.", Impact: "high"},
			{Title: "Tax-loss harvesting", Detail: "Brokerage positions with unrealized losses could offset gains realized during the period.", Impact: "medium"},
		},
		ActionItems: []model.ScenarioActionItem{
			{Action: "Review contribution rate against the annual 401(k) limit", Priority: "high", Category: "contribution"},
			{Action: "Confirm target allocation still matches risk tolerance", Priority: "medium", Category: "allocation"},
		},
	}, nil
}

// demoScenarioNote acknowledges the described scenario without attempting
// to interpret it; demo mode models baseline growth only.
func demoScenarioNote(description string) string {
	description = strings.TrimSpace(description)
	// Truncate on rune boundaries so multi-byte text is never split.
	if runes := []rune(description); len(runes) > 80 {
		description = string(runes[:77]) + "..."
	}
	return fmt.Sprintf("Scenario %q was not separately modeled; figures reflect baseline growth.", description)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
