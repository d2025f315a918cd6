package engine

import "github.com/sageplan/sage-backend/internal/model"

// Diff computes the signed change and percent change from baseline to
// projected. A zero baseline yields a zero percent change regardless of the
// projected value; negative baselines and projections are handled
// symmetrically.
func Diff(baseline, projected float64) (change, changePercent float64) {
	change = projected - baseline
	if baseline == 0 {
		return change, 0
	}
	return change, change / baseline * 100
}

// MergeProjection reconciles a projection response against the baseline
// portfolio. Deltas are computed locally from the echoed projected values,
// never taken from the response's own change fields. An entity the response
// omits is left un-projected: its baseline value carries through unchanged
// and Projected is false.
func MergeProjection(baseline model.PortfolioData, resp model.ScenarioProjectionResponse) model.ProjectionComparison {
	projAccounts := make(map[string]model.ProjectedAccount, len(resp.Projection.Accounts))
	for _, a := range resp.Projection.Accounts {
		projAccounts[a.ID] = a
	}
	projHoldings := make(map[string]model.ProjectedHolding, len(resp.Projection.Holdings))
	for _, h := range resp.Projection.Holdings {
		projHoldings[h.Symbol] = h
	}

	accounts := make([]model.EntityComparison, len(baseline.Accounts))
	for i, a := range baseline.Accounts {
		accounts[i] = compareEntity(a.ID, a.Name, a.Balance)
		if p, ok := projAccounts[a.ID]; ok {
			accounts[i] = applyProjection(accounts[i], p.ProjectedValue)
		}
	}

	holdings := make([]model.EntityComparison, len(baseline.Holdings))
	for i, h := range baseline.Holdings {
		holdings[i] = compareEntity(h.Symbol, h.Name, h.Value)
		if p, ok := projHoldings[h.Symbol]; ok {
			holdings[i] = applyProjection(holdings[i], p.ProjectedValue)
		}
	}

	total := compareEntity("total", "Total portfolio", baseline.TotalValue)
	total = applyProjection(total, resp.Projection.TotalValue)

	return model.ProjectionComparison{
		Total:    total,
		Accounts: accounts,
		Holdings: holdings,
	}
}

// compareEntity builds the un-projected comparison row: projected value
// mirrors the baseline and deltas are zero.
func compareEntity(key, name string, baseline float64) model.EntityComparison {
	return model.EntityComparison{
		Key:            key,
		Name:           name,
		BaselineValue:  baseline,
		ProjectedValue: baseline,
	}
}

func applyProjection(c model.EntityComparison, projected float64) model.EntityComparison {
	change, changePercent := Diff(c.BaselineValue, projected)
	c.ProjectedValue = projected
	c.Change = round2(change)
	c.ChangePercent = round2(changePercent)
	c.Projected = true
	return c
}
