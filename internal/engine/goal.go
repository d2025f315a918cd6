package engine

import (
	"math"

	"github.com/sageplan/sage-backend/internal/model"
)

const (
	// goalGrowthRate is the fixed annual rate used for goal projections.
	goalGrowthRate = 0.07

	// incomeMultiple converts target monthly income into a nest-egg target
	// (25x annual spending, the 4% rule).
	incomeMultiple = 12 * 25
)

// ProjectRetirementGoal computes goal tracking for a profile given the
// portfolio's current total value. The projected amount is the future value
// of current assets plus an ordinary annuity of monthly contributions, both
// compounded at the fixed growth rate. With zero years remaining the
// projection is exactly the current value: the annuity term vanishes.
func ProjectRetirementGoal(profile model.UserProfile, totalValue float64) model.RetirementGoal {
	targetAmount := profile.TargetMonthlyIncome * incomeMultiple
	monthlyContribution := math.Round(profile.Salary * profile.YearlySavingsRate / 12)

	yearsRemaining := profile.TargetRetireAge - profile.Age
	if yearsRemaining < 0 {
		yearsRemaining = 0
	}

	growth := math.Pow(1+goalGrowthRate, float64(yearsRemaining))
	projected := totalValue * growth
	if yearsRemaining > 0 {
		projected += monthlyContribution * 12 * ((growth - 1) / goalGrowthRate)
	}

	progress := 0.0
	if targetAmount > 0 {
		progress = math.Round(totalValue / targetAmount * 100)
		if progress > 100 {
			progress = 100
		}
	}

	return model.RetirementGoal{
		TargetAge:           profile.TargetRetireAge,
		TargetAmount:        targetAmount,
		CurrentAmount:       totalValue,
		ProjectedAmount:     projected,
		YearsRemaining:      yearsRemaining,
		MonthlyContribution: monthlyContribution,
		OnTrack:             projected >= targetAmount,
		ProgressPercent:     progress,
	}
}
