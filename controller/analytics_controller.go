package controller

import (
	"context"
	"fmt"
	"net/http"
	"techservice-backend/models"
	"techservice-backend/services"
	"techservice-backend/utils/logger"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// periodDays maps the period shortcut onto a window length
var periodDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

type AnalyticsController struct {
	ctx     context.Context
	service services.AnalyticsServiceInterface
	logger  logger.Logger
	now     func() time.Time
}

func NewAnalyticsController(ctx context.Context, service services.AnalyticsServiceInterface, logger logger.Logger) *AnalyticsController {
	return &AnalyticsController{
		ctx:     ctx,
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// GetServiceRequestAnalytics handles GET /api/v1/analytics/service-requests
// @Summary Service request analytics
// @Description Summary, breakdowns, trends, technician performance and top customers over a window. Defaults to the last 30 days.
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Window shortcut ending today" Enums(7d, 30d, 90d, 1y)
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end, inclusive (YYYY-MM-DD)"
// @Param granularity query string false "Trend bucket size" Enums(daily, weekly, monthly) default(daily)
// @Success 200 {object} models.APIResponse{data=models.AnalyticsReport} "Analytics retrieved successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid window"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 403 {object} models.APIResponse "Forbidden - Staff only"
// @Router /analytics/service-requests [get]
func (h *AnalyticsController) GetServiceRequestAnalytics(c *gin.Context) {
	window, err := parseWindow(c.Query("period"), c.Query("from"), c.Query("to"), c.Query("granularity"), h.now())
	if err != nil {
		respondError(c, h.logger, "Invalid analytics window", err)
		return
	}

	report, err := h.service.GetAnalytics(c.Request.Context(), window)
	if err != nil {
		respondError(c, h.logger, "Failed to compute analytics", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Analytics retrieved successfully", report)
}

// parseWindow resolves the query parameters into a UTC window. The end date is
// inclusive, so the window runs to midnight after it.
func parseWindow(period, from, to, granularity string, now time.Time) (models.AnalyticsWindow, error) {
	window := models.AnalyticsWindow{Granularity: models.GranularityDaily}
	if granularity != "" {
		window.Granularity = models.Granularity(granularity)
	}

	endOfToday := startOfDay(now).AddDate(0, 0, 1)

	if period != "" {
		if from != "" || to != "" {
			return window, fmt.Errorf("%w: period cannot be combined with from/to", models.ErrValidation)
		}
		window.To = endOfToday
		switch days, ok := periodDays[period]; {
		case ok:
			window.From = endOfToday.AddDate(0, 0, -days)
		case period == "1y":
			window.From = endOfToday.AddDate(-1, 0, 0)
		default:
			return window, fmt.Errorf("%w: period must be one of 7d, 30d, 90d, 1y", models.ErrValidation)
		}
		return window, nil
	}

	window.To = endOfToday
	if to != "" {
		end, err := time.Parse(dateLayout, to)
		if err != nil {
			return window, fmt.Errorf("%w: to must be a date in YYYY-MM-DD format", models.ErrValidation)
		}
		window.To = end.AddDate(0, 0, 1)
	}

	window.From = window.To.AddDate(0, 0, -30)
	if from != "" {
		start, err := time.Parse(dateLayout, from)
		if err != nil {
			return window, fmt.Errorf("%w: from must be a date in YYYY-MM-DD format", models.ErrValidation)
		}
		window.From = start
	}

	if !window.From.Before(window.To) {
		return window, fmt.Errorf("%w: from must not be after to", models.ErrValidation)
	}
	return window, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
