package models

import "time"

// Granularity is the bucket size of an analytics trend series
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func (g Granularity) IsValid() bool {
	return g == GranularityDaily || g == GranularityWeekly || g == GranularityMonthly
}

// AnalyticsWindow is the half-open time range [From, To) an analytics report covers
type AnalyticsWindow struct {
	From        time.Time   `json:"from"`
	To          time.Time   `json:"to"`
	Granularity Granularity `json:"granularity"`
}

// Contains reports whether t falls inside the window
func (w AnalyticsWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// AnalyticsReport aggregates service request metrics over a window
type AnalyticsReport struct {
	Window                AnalyticsWindow         `json:"window"`
	Summary               AnalyticsSummary        `json:"summary"`
	Breakdowns            AnalyticsBreakdowns     `json:"breakdowns"`
	Trends                []TrendPoint            `json:"trends"`
	TechnicianPerformance []TechnicianPerformance `json:"technicianPerformance"`
	TopCustomers          []CustomerSummary       `json:"topCustomers"`
	GeneratedAt           time.Time               `json:"generatedAt"`
}

// AnalyticsSummary holds the headline numbers of a report
type AnalyticsSummary struct {
	TotalRequests         int     `json:"totalRequests"`
	OpenRequests          int     `json:"openRequests"`
	UnassignedRequests    int     `json:"unassignedRequests"`
	CompletedRequests     int     `json:"completedRequests"`
	CancelledRequests     int     `json:"cancelledRequests"`
	CompletionRate        float64 `json:"completionRate"`
	AverageDaysToComplete float64 `json:"averageDaysToComplete"`
	TotalRevenue          float64 `json:"totalRevenue"`
}

// BreakdownEntry is one bucket of a categorical breakdown
type BreakdownEntry struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsBreakdowns groups created requests by category
type AnalyticsBreakdowns struct {
	ByStatus   []BreakdownEntry `json:"byStatus"`
	ByType     []BreakdownEntry `json:"byType"`
	ByPriority []BreakdownEntry `json:"byPriority"`
}

// TrendPoint is one bucket of the trend series
type TrendPoint struct {
	PeriodStart time.Time `json:"periodStart"`
	Label       string    `json:"label"`
	Count       int       `json:"count"`
	Completed   int       `json:"completed"`
	Revenue     float64   `json:"revenue"`
}

// TechnicianPerformance summarizes the closed work of one assignee
type TechnicianPerformance struct {
	TechnicianID   string  `json:"technicianId"`
	Name           string  `json:"name,omitempty"`
	Email          string  `json:"email,omitempty"`
	TotalAssigned  int     `json:"totalAssigned"`
	Completed      int     `json:"completed"`
	ActualHours    float64 `json:"actualHours"`
	Revenue        float64 `json:"revenue"`
	CompletionRate float64 `json:"completionRate"`
}

// CustomerSummary ranks customers by spend
type CustomerSummary struct {
	CustomerID   string  `json:"customerId"`
	Name         string  `json:"name,omitempty"`
	Email        string  `json:"email,omitempty"`
	RequestCount int     `json:"requestCount"`
	TotalSpent   float64 `json:"totalSpent"`
}
