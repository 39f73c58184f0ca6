package model

// PortfolioStats is the top-level rollup shown on the overview tab.
type PortfolioStats struct {
	ProjectCount     int
	ActiveProjects   int // anything not yet Completed
	CriticalProjects int

	RevenueTarget    float64
	RevenueEffective float64 // per-project sponsor sum with stored-actual fallback
	RevenueGap       float64

	PipelineValue    float64 // raw sponsor value sum
	WeightedPipeline float64 // stage-weighted sponsor value sum

	SpeakersTarget    int
	SpeakersConfirmed int
	SpeakerFillRate   float64 // 0 when no targets

	TotalDelegates int
	SponsorCount   int
	SignedSponsors int
}

// ProjectRow is the per-project line used by the grid view and exports.
type ProjectRow struct {
	Project          Project
	SponsorValue     float64 // raw sponsor sum for this project
	EffectiveRevenue float64
	RevenueGap       float64
	FillRate         float64 // confirmed/target, 1 when target is 0
	Delegates        int
	DelegatesByCat   map[DelegateCategory]int
	SponsorCount     int
	SignedCount      int
}

// FinancialStats summarizes money across the filtered portfolio.
type FinancialStats struct {
	Revenue           float64
	Expenses          float64
	Profit            float64
	ProfitMargin      float64 // percent, 0 when revenue is 0
	BudgetTotal       float64
	BudgetUtilization float64 // percent, unclamped
}

// ExpenseCategory is one category's share of total spend.
type ExpenseCategory struct {
	Category string
	Amount   float64
}

// MarketingStats sums campaign performance across the filtered projects.
type MarketingStats struct {
	EmailsSent        int
	AvgOpenRate       float64 // mean of per-project open rates
	SocialImpressions int
	AdSpend           float64
	AdClicks          int
	CTR               float64 // clicks per ad dollar, percent
	WebsiteVisits     int
}

// DelegateTrendPoint is delegate volume for one calendar day.
type DelegateTrendPoint struct {
	Date       string // YYYY-MM-DD
	Government int
	Industry   int
	Student    int
	Total      int
}

// FunnelStage is a sponsor count at one funnel stage.
type FunnelStage struct {
	Stage SponsorStage
	Count int
}
