package engine

import (
	"math"
	"testing"
	"time"

	"github.com/sageplan/sage-backend/internal/model"
)

var synthNow = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

// TestSynthesizePortfolio tests the profile-to-portfolio synthesizer.
//
// WHY: In standalone mode this function substitutes for the entire backend;
// its totals, account split, and holdings must be deterministic and match
// the documented scaling.
func TestSynthesizePortfolio(t *testing.T) {
	reference := model.UserProfile{
		ID:                  "user-1",
		Age:                 42,
		Salary:              125000,
		YearlySavingsRate:   0.15,
		RiskAppetite:        model.RiskMedium,
		TargetRetireAge:     65,
		TargetMonthlyIncome: 5000,
	}

	t.Run("reference profile yields the base total", func(t *testing.T) {
		data := SynthesizePortfolio(&reference, synthNow)

		if data.TotalValue != 733370 {
			t.Errorf("Expected total 733370, got %v", data.TotalValue)
		}
		if data.RetirementGoal.TargetAmount != 1500000 {
			t.Errorf("Expected goal target 1500000, got %v", data.RetirementGoal.TargetAmount)
		}
		if data.RetirementGoal.MonthlyContribution != 1563 {
			t.Errorf("Expected monthly contribution 1563, got %v", data.RetirementGoal.MonthlyContribution)
		}
	})

	t.Run("stated investment assets override the salary heuristic", func(t *testing.T) {
		p := reference
		p.InvestmentAssets = 400000

		data := SynthesizePortfolio(&p, synthNow)

		if data.TotalValue != 460000 {
			t.Errorf("Expected total 460000 (assets * 1.15), got %v", data.TotalValue)
		}
	})

	t.Run("accounts follow the fixed split", func(t *testing.T) {
		data := SynthesizePortfolio(&reference, synthNow)

		if len(data.Accounts) != 3 {
			t.Fatalf("Expected 3 accounts, got %d", len(data.Accounts))
		}
		shares := []float64{0.58, 0.18, 0.24}
		for i, a := range data.Accounts {
			want := round2(data.TotalValue * shares[i])
			if a.Balance != want {
				t.Errorf("Account %s: expected balance %v, got %v", a.ID, want, a.Balance)
			}
			if a.ChangePercent24h <= 0 {
				t.Errorf("Account %s: expected positive daily change percent, got %v", a.ID, a.ChangePercent24h)
			}
		}
	})

	t.Run("holdings allocations sum to 100 within tolerance", func(t *testing.T) {
		for _, risk := range []model.RiskAppetite{model.RiskLow, model.RiskMedium, model.RiskHigh} {
			p := reference
			p.RiskAppetite = risk

			data := SynthesizePortfolio(&p, synthNow)

			sum := 0.0
			for _, h := range data.Holdings {
				sum += h.Allocation
			}
			if math.Abs(sum-100) > 0.0001 {
				t.Errorf("Risk %s: expected allocation sum 100, got %v", risk, sum)
			}
		}
	})

	t.Run("holding values derive from model allocations", func(t *testing.T) {
		data := SynthesizePortfolio(&reference, synthNow)

		// VTI carries 35% of the balanced model portfolio.
		if data.Holdings[0].Symbol != "VTI" {
			t.Fatalf("Expected first holding VTI, got %s", data.Holdings[0].Symbol)
		}
		want := round2(data.TotalValue * 35 / 100)
		if data.Holdings[0].Value != want {
			t.Errorf("Expected VTI value %v, got %v", want, data.Holdings[0].Value)
		}
		if data.Holdings[0].GainLoss != round2(data.Holdings[0].Value-data.Holdings[0].CostBasis) {
			t.Error("Expected gainLoss to equal value minus cost basis")
		}
	})

	t.Run("unique symbols per portfolio", func(t *testing.T) {
		for _, risk := range []model.RiskAppetite{model.RiskLow, model.RiskMedium, model.RiskHigh} {
			p := reference
			p.RiskAppetite = risk

			data := SynthesizePortfolio(&p, synthNow)

			seen := map[string]bool{}
			for _, h := range data.Holdings {
				if seen[h.Symbol] {
					t.Errorf("Risk %s: duplicate symbol %s", risk, h.Symbol)
				}
				seen[h.Symbol] = true
			}
		}
	})

	t.Run("nil profile falls back to defaults", func(t *testing.T) {
		data := SynthesizePortfolio(nil, synthNow)

		if data.TotalValue != 733370 {
			t.Errorf("Expected default total 733370, got %v", data.TotalValue)
		}
		if len(data.Holdings) == 0 || len(data.Accounts) == 0 {
			t.Error("Expected fallback portfolio to be fully populated")
		}
	})

	t.Run("unknown risk appetite uses the balanced model", func(t *testing.T) {
		p := reference
		p.RiskAppetite = "adventurous"

		data := SynthesizePortfolio(&p, synthNow)

		if data.Holdings[0].Symbol != "VTI" || data.Holdings[0].Allocation != 35 {
			t.Errorf("Expected balanced model fallback, got %s at %v%%",
				data.Holdings[0].Symbol, data.Holdings[0].Allocation)
		}
	})

	t.Run("activity and notifications are fixed datasets", func(t *testing.T) {
		a := SynthesizePortfolio(&reference, synthNow)
		p := reference
		p.RiskAppetite = model.RiskHigh
		p.Salary = 90000
		b := SynthesizePortfolio(&p, synthNow)

		if len(a.RecentActivity) != len(b.RecentActivity) {
			t.Fatal("Expected identical activity history across profiles")
		}
		for i := range a.RecentActivity {
			if a.RecentActivity[i] != b.RecentActivity[i] {
				t.Errorf("Activity %d differs across profiles", i)
			}
		}
		if a.YTDReturnPercent != b.YTDReturnPercent {
			t.Error("Expected fixed YTD return across profiles")
		}
	})
}

// TestModelPortfolioWeights tests the raw archetype weight tables.
//
// WHY: The normalizer can only guarantee a 100.0 display sum if the model
// tables themselves are complete partitions.
func TestModelPortfolioWeights(t *testing.T) {
	for _, risk := range []model.RiskAppetite{model.RiskLow, model.RiskMedium, model.RiskHigh} {
		weights := ModelPortfolioWeights(risk)
		if len(weights) == 0 {
			t.Fatalf("Risk %s: no model weights", risk)
		}
		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		if sum != 100 {
			t.Errorf("Risk %s: expected raw weights to sum to 100, got %v", risk, sum)
		}
	}

	if ModelPortfolioWeights("unknown") != nil {
		t.Error("Expected nil for unknown archetype")
	}
}
