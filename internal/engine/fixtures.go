package engine

import "github.com/sageplan/sage-backend/internal/model"

// modelHolding is one row of a risk-archetype model portfolio. Allocation is
// the raw model weight in percent; each archetype's weights sum to 100.
type modelHolding struct {
	Symbol     string
	Name       string
	Allocation float64
	Sector     string
	Price      float64
}

// modelPortfolios keys the three fixed model portfolios by risk appetite.
// New archetypes are added here, not in computation code.
var modelPortfolios = map[model.RiskAppetite][]modelHolding{
	model.RiskLow: {
		{Symbol: "BND", Name: "Vanguard Total Bond Market ETF", Allocation: 30, Sector: "Fixed Income", Price: 72.45},
		{Symbol: "VTIP", Name: "Vanguard Short-Term Inflation-Protected ETF", Allocation: 15, Sector: "Fixed Income", Price: 48.91},
		{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Allocation: 20, Sector: "US Equity", Price: 262.18},
		{Symbol: "SCHD", Name: "Schwab US Dividend Equity ETF", Allocation: 15, Sector: "US Equity", Price: 27.63},
		{Symbol: "VXUS", Name: "Vanguard Total International Stock ETF", Allocation: 10, Sector: "International Equity", Price: 64.72},
		{Symbol: "VMFXX", Name: "Vanguard Federal Money Market Fund", Allocation: 10, Sector: "Cash", Price: 1.00},
	},
	model.RiskMedium: {
		{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Allocation: 35, Sector: "US Equity", Price: 262.18},
		{Symbol: "VXUS", Name: "Vanguard Total International Stock ETF", Allocation: 15, Sector: "International Equity", Price: 64.72},
		{Symbol: "BND", Name: "Vanguard Total Bond Market ETF", Allocation: 20, Sector: "Fixed Income", Price: 72.45},
		{Symbol: "QQQ", Name: "Invesco QQQ Trust", Allocation: 10, Sector: "US Equity", Price: 481.92},
		{Symbol: "SCHD", Name: "Schwab US Dividend Equity ETF", Allocation: 10, Sector: "US Equity", Price: 27.63},
		{Symbol: "VNQ", Name: "Vanguard Real Estate ETF", Allocation: 10, Sector: "Real Estate", Price: 89.34},
	},
	model.RiskHigh: {
		{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Allocation: 30, Sector: "US Equity", Price: 262.18},
		{Symbol: "QQQ", Name: "Invesco QQQ Trust", Allocation: 25, Sector: "US Equity", Price: 481.92},
		{Symbol: "VXUS", Name: "Vanguard Total International Stock ETF", Allocation: 15, Sector: "International Equity", Price: 64.72},
		{Symbol: "VUG", Name: "Vanguard Growth ETF", Allocation: 15, Sector: "US Equity", Price: 356.40},
		{Symbol: "SMH", Name: "VanEck Semiconductor ETF", Allocation: 10, Sector: "Technology", Price: 238.77},
		{Symbol: "BND", Name: "Vanguard Total Bond Market ETF", Allocation: 5, Sector: "Fixed Income", Price: 72.45},
	},
}

// accountArchetype is one row of the fixed account split. Share is the
// fraction of total value held in the account; ChangePercent24h is a fixed
// illustrative daily move.
type accountArchetype struct {
	ID               string
	Name             string
	Type             string
	Institution      string
	Icon             string
	Share            float64
	ChangePercent24h float64
}

// accountArchetypes splits total value 58/18/24 across the three account
// types every synthesized portfolio carries.
var accountArchetypes = []accountArchetype{
	{ID: "acct-401k", Name: "401(k) Retirement", Type: "401k", Institution: "Fidelity", Icon: "briefcase", Share: 0.58, ChangePercent24h: 0.42},
	{ID: "acct-roth-ira", Name: "Roth IRA", Type: "roth_ira", Institution: "Vanguard", Icon: "shield", Share: 0.18, ChangePercent24h: 0.31},
	{ID: "acct-brokerage", Name: "Brokerage", Type: "brokerage", Institution: "Charles Schwab", Icon: "trending-up", Share: 0.24, ChangePercent24h: 0.55},
}

// costBasisGains is the fixed gain ladder used to derive cost basis from
// current value, indexed by holding position mod 5.
var costBasisGains = [5]float64{0.22, 0.08, 0.15, 0.11, 0.18}

// transactionFixture describes one illustrative activity record. DaysAgo is
// resolved against the synthesis time.
type transactionFixture struct {
	ID          string
	DaysAgo     int
	Type        model.TransactionType
	Description string
	Amount      float64
	Account     string
	Symbol      string
}

// Activity history is a fixed illustrative dataset, independent of profile.
var transactionFixtures = []transactionFixture{
	{ID: "txn-001", DaysAgo: 2, Type: model.TransactionContribution, Description: "Payroll contribution", Amount: 1250.00, Account: "401(k) Retirement"},
	{ID: "txn-002", DaysAgo: 5, Type: model.TransactionDividend, Description: "Quarterly dividend", Amount: 342.18, Account: "Brokerage", Symbol: "SCHD"},
	{ID: "txn-003", DaysAgo: 9, Type: model.TransactionTrade, Description: "Bought 12 shares", Amount: -3146.16, Account: "Brokerage", Symbol: "VTI"},
	{ID: "txn-004", DaysAgo: 14, Type: model.TransactionRebalance, Description: "Quarterly rebalance", Amount: 0, Account: "401(k) Retirement"},
	{ID: "txn-005", DaysAgo: 18, Type: model.TransactionContribution, Description: "Payroll contribution", Amount: 1250.00, Account: "401(k) Retirement"},
	{ID: "txn-006", DaysAgo: 23, Type: model.TransactionDividend, Description: "Bond fund distribution", Amount: 187.92, Account: "Roth IRA", Symbol: "BND"},
	{ID: "txn-007", DaysAgo: 27, Type: model.TransactionWithdrawal, Description: "Transfer to checking", Amount: -500.00, Account: "Brokerage"},
	{ID: "txn-008", DaysAgo: 30, Type: model.TransactionFee, Description: "Advisory fee", Amount: -62.50, Account: "Brokerage"},
}

// notificationFixture describes one dashboard alert.
type notificationFixture struct {
	ID      string
	DaysAgo int
	Title   string
	Message string
	Type    string
}

var notificationFixtures = []notificationFixture{
	{ID: "ntf-001", DaysAgo: 1, Title: "Contribution received", Message: "Your latest 401(k) payroll contribution has been invested.", Type: "info"},
	{ID: "ntf-002", DaysAgo: 6, Title: "Dividend paid", Message: "SCHD paid a quarterly dividend to your brokerage account.", Type: "success"},
	{ID: "ntf-003", DaysAgo: 13, Title: "Allocation drift", Message: "Your equity allocation has drifted 2% above target. Consider rebalancing.", Type: "warning"},
}

// Fixed illustrative year-to-date return, independent of profile.
const ytdReturnPercent = 8.7
