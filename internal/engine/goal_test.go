package engine

import (
	"math"
	"testing"

	"github.com/sageplan/sage-backend/internal/model"
)

// TestProjectRetirementGoal tests the future-value goal projection.
//
// WHY: The on-track flag drives the most prominent dashboard signal; the
// annuity formula and its zero-years guard must be exact.
func TestProjectRetirementGoal(t *testing.T) {
	base := model.UserProfile{
		Age:                 42,
		Salary:              125000,
		YearlySavingsRate:   0.15,
		RiskAppetite:        model.RiskMedium,
		TargetRetireAge:     65,
		TargetMonthlyIncome: 5000,
	}

	t.Run("derives target and contribution from the profile", func(t *testing.T) {
		goal := ProjectRetirementGoal(base, 733370)

		if goal.TargetAmount != 1500000 {
			t.Errorf("Expected target 1500000, got %v", goal.TargetAmount)
		}
		if goal.MonthlyContribution != 1563 {
			t.Errorf("Expected monthly contribution 1563, got %v", goal.MonthlyContribution)
		}
		if goal.YearsRemaining != 23 {
			t.Errorf("Expected 23 years remaining, got %d", goal.YearsRemaining)
		}
	})

	t.Run("zero years remaining projects exactly the current value", func(t *testing.T) {
		p := base
		p.Age = 65

		goal := ProjectRetirementGoal(p, 987654.32)

		if goal.ProjectedAmount != 987654.32 {
			t.Errorf("Expected projection to equal current value, got %v", goal.ProjectedAmount)
		}
		if goal.YearsRemaining != 0 {
			t.Errorf("Expected 0 years remaining, got %d", goal.YearsRemaining)
		}
	})

	t.Run("age past target clamps years remaining to zero", func(t *testing.T) {
		p := base
		p.Age = 71

		goal := ProjectRetirementGoal(p, 500000)

		if goal.YearsRemaining != 0 {
			t.Errorf("Expected 0 years remaining, got %d", goal.YearsRemaining)
		}
		if goal.ProjectedAmount != 500000 {
			t.Errorf("Expected projection to equal current value, got %v", goal.ProjectedAmount)
		}
	})

	t.Run("projection matches the annuity formula", func(t *testing.T) {
		goal := ProjectRetirementGoal(base, 733370)

		growth := math.Pow(1.07, 23)
		want := 733370*growth + 1563*12*((growth-1)/0.07)
		if math.Abs(goal.ProjectedAmount-want) > 0.01 {
			t.Errorf("Expected projection %v, got %v", want, goal.ProjectedAmount)
		}
		if !goal.OnTrack {
			t.Error("Expected profile to be on track")
		}
	})

	t.Run("progress is clamped at 100", func(t *testing.T) {
		goal := ProjectRetirementGoal(base, 2000000)

		if goal.ProgressPercent != 100 {
			t.Errorf("Expected progress 100, got %v", goal.ProgressPercent)
		}
	})

	t.Run("progress rounds the current share of target", func(t *testing.T) {
		goal := ProjectRetirementGoal(base, 733370)

		// 733370 / 1500000 * 100 = 48.89...
		if goal.ProgressPercent != 49 {
			t.Errorf("Expected progress 49, got %v", goal.ProgressPercent)
		}
	})
}
