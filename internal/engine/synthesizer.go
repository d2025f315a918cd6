package engine

import (
	"math"
	"time"

	"github.com/sageplan/sage-backend/internal/model"
)

const (
	// baseTotal is the reference portfolio value for a 42-year-old earning
	// the reference salary with twenty years of saving behind them.
	baseTotal       = 733370.0
	referenceSalary = 125000.0
	referenceYears  = 20.0

	// assetMarkup inflates self-reported investment assets to include
	// accrued gains when a profile states them directly.
	assetMarkup = 1.15

	careerStartAge = 22
)

// defaultProfile backs synthesis when no profile is supplied. Age 42 at the
// reference salary yields the base total with no adjustment.
var defaultProfile = model.UserProfile{
	ID:                  "default",
	Name:                "Guest",
	Age:                 42,
	Salary:              referenceSalary,
	YearlySavingsRate:   0.15,
	RiskAppetite:        model.RiskMedium,
	TargetRetireAge:     65,
	TargetMonthlyIncome: 5000,
}

// SynthesizePortfolio deterministically derives a complete portfolio from a
// profile. It is the standalone substitute for a live brokerage backend: the
// same profile and synthesis time always produce the same portfolio. A nil
// profile falls back to default planning inputs instead of failing.
func SynthesizePortfolio(profile *model.UserProfile, now time.Time) model.PortfolioData {
	if profile == nil {
		p := defaultProfile
		profile = &p
	}

	totalValue := synthesizeTotalValue(profile)
	accounts := synthesizeAccounts(totalValue)
	holdings := synthesizeHoldings(profile.RiskAppetite, totalValue)

	totalChange := 0.0
	for _, a := range accounts {
		totalChange += a.Change24h
	}

	changePercent := 0.0
	if totalValue != 0 {
		changePercent = round2(totalChange / totalValue * 100)
	}

	return model.PortfolioData{
		TotalValue:            totalValue,
		TotalChange24h:        round2(totalChange),
		TotalChangePercent24h: changePercent,
		YTDReturnPercent:      ytdReturnPercent,
		Accounts:              accounts,
		Holdings:              holdings,
		RecentActivity:        synthesizeActivity(now),
		RetirementGoal:        ProjectRetirementGoal(*profile, totalValue),
		Notifications:         synthesizeNotifications(now),
	}
}

// synthesizeTotalValue estimates net invested assets. Stated investment
// assets win when present; otherwise the base total is scaled by career
// length and salary relative to the reference client.
func synthesizeTotalValue(profile *model.UserProfile) float64 {
	if profile.InvestmentAssets > 0 {
		return round2(profile.InvestmentAssets * assetMarkup)
	}

	yearsWorking := float64(profile.Age - careerStartAge)
	if yearsWorking < 1 {
		yearsWorking = 1
	}

	return round2(baseTotal * math.Sqrt(yearsWorking/referenceYears) * (profile.Salary / referenceSalary))
}

func synthesizeAccounts(totalValue float64) []model.Account {
	accounts := make([]model.Account, len(accountArchetypes))
	for i, a := range accountArchetypes {
		balance := round2(totalValue * a.Share)
		accounts[i] = model.Account{
			ID:               a.ID,
			Name:             a.Name,
			Type:             a.Type,
			Balance:          balance,
			Change24h:        round2(balance * a.ChangePercent24h / 100),
			ChangePercent24h: a.ChangePercent24h,
			Institution:      a.Institution,
			Icon:             a.Icon,
		}
	}
	return accounts
}

func synthesizeHoldings(risk model.RiskAppetite, totalValue float64) []model.Holding {
	table, ok := modelPortfolios[risk]
	if !ok {
		table = modelPortfolios[model.RiskMedium]
	}

	holdings := make([]model.Holding, len(table))
	weights := make([]AllocationInput, len(table))
	for i, h := range table {
		value := round2(totalValue * h.Allocation / 100)
		costBasis := math.Round(value / (1 + costBasisGains[i%len(costBasisGains)]))
		gainLoss := round2(value - costBasis)

		gainLossPercent := 0.0
		if costBasis != 0 {
			gainLossPercent = round2(gainLoss / costBasis * 100)
		}

		holdings[i] = model.Holding{
			Symbol:          h.Symbol,
			Name:            h.Name,
			Shares:          math.Round(value / h.Price),
			Price:           h.Price,
			Value:           value,
			CostBasis:       costBasis,
			GainLoss:        gainLoss,
			GainLossPercent: gainLossPercent,
			Sector:          h.Sector,
		}
		weights[i] = AllocationInput{Label: h.Symbol, Weight: value}
	}

	for i, slice := range NormalizeAllocations(weights) {
		holdings[i].Allocation = slice.Weight
		holdings[i].Color = slice.Color
	}

	return holdings
}

func synthesizeActivity(now time.Time) []model.Transaction {
	activity := make([]model.Transaction, len(transactionFixtures))
	for i, t := range transactionFixtures {
		activity[i] = model.Transaction{
			ID:          t.ID,
			Date:        now.AddDate(0, 0, -t.DaysAgo),
			Type:        t.Type,
			Description: t.Description,
			Amount:      t.Amount,
			Account:     t.Account,
			Symbol:      t.Symbol,
		}
	}
	return activity
}

func synthesizeNotifications(now time.Time) []model.Notification {
	notifications := make([]model.Notification, len(notificationFixtures))
	for i, n := range notificationFixtures {
		notifications[i] = model.Notification{
			ID:      n.ID,
			Title:   n.Title,
			Message: n.Message,
			Type:    n.Type,
			Date:    now.AddDate(0, 0, -n.DaysAgo),
		}
	}
	return notifications
}

// ModelPortfolioWeights exposes the raw model weights for an archetype.
// Used to snapshot allocations before normalization rounding.
func ModelPortfolioWeights(risk model.RiskAppetite) []float64 {
	table, ok := modelPortfolios[risk]
	if !ok {
		return nil
	}
	weights := make([]float64, len(table))
	for i, h := range table {
		weights[i] = h.Allocation
	}
	return weights
}
