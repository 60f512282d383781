package services

import (
	"sort"
	"techservice-backend/models"
	"techservice-backend/utils"
	"time"
)

const topCustomerLimit = 10

// ComputeAnalytics builds a report from raw requests.
//
// Requests created inside the window feed the summary totals, breakdowns,
// trend counts and customer ranking. Requests closed (completed or cancelled)
// inside the window feed completion rate, time-to-complete, revenue and
// technician performance.
func ComputeAnalytics(requests []*models.ServiceRequest, users map[string]*models.User, window models.AnalyticsWindow, now time.Time) *models.AnalyticsReport {
	report := &models.AnalyticsReport{
		Window:      window,
		GeneratedAt: now,
	}

	trends, bucketIndex := newTrendSeries(window)

	statusCounts := map[models.ServiceStatus]int{}
	typeCounts := map[models.ServiceType]int{}
	priorityCounts := map[models.ServicePriority]int{}
	customers := map[string]*models.CustomerSummary{}
	technicians := map[string]*models.TechnicianPerformance{}

	var totalDays float64
	for _, r := range requests {
		if window.Contains(r.CreatedAt) {
			report.Summary.TotalRequests++
			if !r.Status.IsClosed() {
				report.Summary.OpenRequests++
			}
			if r.AssignedTo == "" {
				report.Summary.UnassignedRequests++
			}
			statusCounts[r.Status]++
			typeCounts[r.Type]++
			priorityCounts[r.Priority]++

			if i, ok := bucketIndex[bucketStart(r.CreatedAt, window.Granularity)]; ok {
				trends[i].Count++
			}

			c := customers[r.CustomerID]
			if c == nil {
				c = &models.CustomerSummary{CustomerID: r.CustomerID}
				customers[r.CustomerID] = c
			}
			c.RequestCount++
			if r.Status == models.ServiceStatusCompleted {
				c.TotalSpent += r.Price
			}
		}

		closedAt := r.ClosedAt()
		if closedAt == nil || !window.Contains(*closedAt) {
			continue
		}

		completed := r.Status == models.ServiceStatusCompleted
		if completed {
			report.Summary.CompletedRequests++
			report.Summary.TotalRevenue += r.Price
			totalDays += closedAt.Sub(r.CreatedAt).Hours() / 24
			if i, ok := bucketIndex[bucketStart(*closedAt, window.Granularity)]; ok {
				trends[i].Completed++
				trends[i].Revenue += r.Price
			}
		} else {
			report.Summary.CancelledRequests++
		}

		if r.AssignedTo == "" {
			continue
		}
		t := technicians[r.AssignedTo]
		if t == nil {
			t = &models.TechnicianPerformance{TechnicianID: r.AssignedTo}
			technicians[r.AssignedTo] = t
		}
		t.TotalAssigned++
		if r.ActualHours != nil {
			t.ActualHours += *r.ActualHours
		}
		if completed {
			t.Completed++
			t.Revenue += r.Price
		}
	}

	closed := report.Summary.CompletedRequests + report.Summary.CancelledRequests
	report.Summary.CompletionRate = utils.Percentage(report.Summary.CompletedRequests, closed)
	if report.Summary.CompletedRequests > 0 {
		report.Summary.AverageDaysToComplete = utils.Round(totalDays/float64(report.Summary.CompletedRequests), 2)
	}
	report.Summary.TotalRevenue = utils.Round(report.Summary.TotalRevenue, 2)

	total := report.Summary.TotalRequests
	for _, st := range models.AllServiceStatuses() {
		report.Breakdowns.ByStatus = append(report.Breakdowns.ByStatus, breakdown(string(st), statusCounts[st], total))
	}
	for _, ty := range models.AllServiceTypes() {
		report.Breakdowns.ByType = append(report.Breakdowns.ByType, breakdown(string(ty), typeCounts[ty], total))
	}
	for _, p := range models.AllServicePriorities() {
		report.Breakdowns.ByPriority = append(report.Breakdowns.ByPriority, breakdown(string(p), priorityCounts[p], total))
	}

	for i := range trends {
		trends[i].Revenue = utils.Round(trends[i].Revenue, 2)
	}
	report.Trends = trends
	report.TechnicianPerformance = rankTechnicians(technicians, users)
	report.TopCustomers = rankCustomers(customers, users)
	return report
}

func breakdown(key string, count, total int) models.BreakdownEntry {
	return models.BreakdownEntry{Key: key, Count: count, Percentage: utils.Percentage(count, total)}
}

func rankTechnicians(byID map[string]*models.TechnicianPerformance, users map[string]*models.User) []models.TechnicianPerformance {
	out := make([]models.TechnicianPerformance, 0, len(byID))
	for id, t := range byID {
		if u := users[id]; u != nil {
			t.Name, t.Email = u.Name, u.Email
		}
		t.CompletionRate = utils.Percentage(t.Completed, t.TotalAssigned)
		t.ActualHours = utils.Round(t.ActualHours, 2)
		t.Revenue = utils.Round(t.Revenue, 2)
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return out[i].Completed > out[j].Completed
		}
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].TechnicianID < out[j].TechnicianID
	})
	return out
}

func rankCustomers(byID map[string]*models.CustomerSummary, users map[string]*models.User) []models.CustomerSummary {
	out := make([]models.CustomerSummary, 0, len(byID))
	for id, c := range byID {
		if u := users[id]; u != nil {
			c.Name, c.Email = u.Name, u.Email
		}
		c.TotalSpent = utils.Round(c.TotalSpent, 2)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSpent != out[j].TotalSpent {
			return out[i].TotalSpent > out[j].TotalSpent
		}
		if out[i].RequestCount != out[j].RequestCount {
			return out[i].RequestCount > out[j].RequestCount
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	if len(out) > topCustomerLimit {
		out = out[:topCustomerLimit]
	}
	return out
}

// newTrendSeries returns every bucket overlapping the window in chronological
// order, plus an index from bucket start to position.
func newTrendSeries(window models.AnalyticsWindow) ([]models.TrendPoint, map[time.Time]int) {
	var points []models.TrendPoint
	index := map[time.Time]int{}
	for start := bucketStart(window.From, window.Granularity); start.Before(window.To); start = nextBucket(start, window.Granularity) {
		index[start] = len(points)
		points = append(points, models.TrendPoint{PeriodStart: start, Label: bucketLabel(start, window.Granularity)})
	}
	return points, index
}

// BucketCount reports how many trend buckets the window spans, counting no further than limit+1
func BucketCount(window models.AnalyticsWindow, limit int) int {
	n := 0
	for start := bucketStart(window.From, window.Granularity); start.Before(window.To) && n <= limit; start = nextBucket(start, window.Granularity) {
		n++
	}
	return n
}

// bucketStart truncates t to its bucket in UTC. Weeks start on Monday.
func bucketStart(t time.Time, g models.Granularity) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case models.GranularityWeekly:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case models.GranularityMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func nextBucket(start time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityWeekly:
		return start.AddDate(0, 0, 7)
	case models.GranularityMonthly:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

func bucketLabel(start time.Time, g models.Granularity) string {
	if g == models.GranularityMonthly {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}
