// Package model defines the core data types for the horizon dashboard.
package model

import "time"

// ProjectStatus is the lifecycle state of an event project.
type ProjectStatus string

const (
	StatusOnTrack   ProjectStatus = "On Track"
	StatusCritical  ProjectStatus = "Critical"
	StatusCompleted ProjectStatus = "Completed"
)

// AllStatuses lists every project status in display order.
var AllStatuses = []ProjectStatus{StatusOnTrack, StatusCritical, StatusCompleted}

// SponsorStage is a sponsor's position in the sales funnel.
type SponsorStage string

const (
	StageLead         SponsorStage = "Lead"
	StageProposal     SponsorStage = "Proposal"
	StageContractSent SponsorStage = "ContractSent"
	StageSigned       SponsorStage = "Signed"
)

// FunnelStages lists sponsor stages in funnel order.
var FunnelStages = []SponsorStage{StageLead, StageProposal, StageContractSent, StageSigned}

// DelegateCategory classifies a registered delegate.
type DelegateCategory string

const (
	CategoryGovernment DelegateCategory = "Government"
	CategoryIndustry   DelegateCategory = "Industry"
	CategoryStudent    DelegateCategory = "Student"
)

// DelegateCategories lists delegate categories in display order.
var DelegateCategories = []DelegateCategory{CategoryGovernment, CategoryIndustry, CategoryStudent}

// Project is a single event in the portfolio.
type Project struct {
	ID                string
	Name              string
	EventDate         time.Time
	Status            ProjectStatus
	RevenueTarget     float64
	RevenueActual     float64
	SpeakersTarget    int
	SpeakersConfirmed int

	// BudgetTotal and ExpensesActual are nil when the source sheet has no
	// usable value for them, which several downstream rules depend on.
	BudgetTotal    *float64
	ExpensesActual *float64
}

// Sponsor is one sponsorship deal attached to a project.
type Sponsor struct {
	Name      string
	ProjectID string
	Stage     SponsorStage
	Value     float64
}

// DelegateLog is one registration batch, dated by calendar day.
type DelegateLog struct {
	DateLogged string // YYYY-MM-DD
	ProjectID  string
	Category   DelegateCategory
	Count      int
}

// Marketing holds per-project campaign performance totals.
type Marketing struct {
	ProjectID         string
	EmailsSent        int
	OpenRate          float64 // fraction, 0..1
	SocialPosts       int
	SocialImpressions int
	AdSpend           float64
	AdClicks          int
	WebsiteVisits     int
	Campaigns         []Campaign
}

// Campaign is a single named marketing push.
type Campaign struct {
	Name    string
	Channel string // Email, Social, Ad
	Status  string // Draft, Scheduled, Active, Sent
	Metric  string // free-text headline result
	Date    string // YYYY-MM-DD
}

// Expense is one spend line against a project budget.
type Expense struct {
	ProjectID   string
	Category    string
	Amount      float64
	Description string
}

// Dataset is the full portfolio as loaded from a source.
type Dataset struct {
	Projects  []Project
	Sponsors  []Sponsor
	Delegates []DelegateLog
	Marketing []Marketing
	Expenses  []Expense
}
