package model

// RiskAppetite buckets a client's stated risk tolerance. It selects which
// model portfolio the synthesizer builds holdings from.
type RiskAppetite string

const (
	RiskLow    RiskAppetite = "low"
	RiskMedium RiskAppetite = "medium"
	RiskHigh   RiskAppetite = "high"
)

// Valid reports whether the value is one of the three supported buckets.
func (r RiskAppetite) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// UserProfile holds a client's planning inputs. Profiles are seeded reference
// data: the engine reads them and never mutates them.
type UserProfile struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Age                 int          `json:"age"`
	Salary              float64      `json:"salary"`
	CurrentCash         float64      `json:"current_cash"`
	InvestmentAssets    float64      `json:"investment_assets"`
	YearlySavingsRate   float64      `json:"yearly_savings_rate"`
	RiskAppetite        RiskAppetite `json:"risk_appetite"`
	TargetRetireAge     int          `json:"target_retire_age"`
	TargetMonthlyIncome float64      `json:"target_monthly_income"`
	Description         string       `json:"description,omitempty"`
	AdvisorID           string       `json:"advisor_id,omitempty"`
}
