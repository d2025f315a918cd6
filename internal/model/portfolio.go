package model

import "time"

// Account represents a single retirement or investment account. Account
// balances and holdings are two independent partitions of the same net
// worth: account balances are not required to sum to PortfolioData.TotalValue.
type Account struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Balance          float64 `json:"balance"`
	Change24h        float64 `json:"change24h"`
	ChangePercent24h float64 `json:"changePercent24h"`
	Institution      string  `json:"institution"`
	Icon             string  `json:"icon"`
}

// Holding represents a single position within the portfolio. Symbol is
// unique per portfolio; Allocation is the display percentage of total value
// and all holdings' allocations sum to 100 within rounding tolerance.
type Holding struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Shares          float64 `json:"shares"`
	Price           float64 `json:"price"`
	Value           float64 `json:"value"`
	CostBasis       float64 `json:"costBasis"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
	Allocation      float64 `json:"allocation"`
	Sector          string  `json:"sector"`
	Color           string  `json:"color"`
}

// TransactionType classifies a historical portfolio event.
type TransactionType string

const (
	TransactionContribution TransactionType = "contribution"
	TransactionDividend     TransactionType = "dividend"
	TransactionTrade        TransactionType = "trade"
	TransactionRebalance    TransactionType = "rebalance"
	TransactionWithdrawal   TransactionType = "withdrawal"
	TransactionFee          TransactionType = "fee"
)

// Transaction is an immutable historical record. Amount is signed and may be
// zero for non-monetary events such as rebalances.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Account     string          `json:"account"`
	Symbol      string          `json:"symbol,omitempty"`
}

// Notification is a dashboard alert shown alongside the portfolio.
type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
}

// RetirementGoal tracks progress toward the retirement income target. It is
// derived data, recomputed whenever the owning portfolio is recomputed.
type RetirementGoal struct {
	TargetAge           int     `json:"targetAge"`
	TargetAmount        float64 `json:"targetAmount"`
	CurrentAmount       float64 `json:"currentAmount"`
	ProjectedAmount     float64 `json:"projectedAmount"`
	YearsRemaining      int     `json:"yearsRemaining"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	OnTrack             bool    `json:"onTrack"`
	ProgressPercent     float64 `json:"progressPercent"`
}

// PortfolioData is the aggregate dashboard payload for one profile. It has
// no persistence of its own: it is regenerated from the profile on every
// request, never incrementally mutated.
type PortfolioData struct {
	TotalValue            float64        `json:"totalValue"`
	TotalChange24h        float64        `json:"totalChange24h"`
	TotalChangePercent24h float64        `json:"totalChangePercent24h"`
	YTDReturnPercent      float64        `json:"ytdReturnPercent"`
	Accounts              []Account      `json:"accounts"`
	Holdings              []Holding      `json:"holdings"`
	RecentActivity        []Transaction  `json:"recentActivity"`
	RetirementGoal        RetirementGoal `json:"retirementGoal"`
	Notifications         []Notification `json:"notifications"`
}

// PerformancePoint is one sample of the synthetic portfolio value series.
type PerformancePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
