package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"techservice-backend/models"
	"techservice-backend/repository"
	"techservice-backend/utils/logger"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxTrendBuckets = 1000

type AnalyticsService struct {
	requestRepo repository.ServiceRequestRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	cache       *expirable.LRU[string, *models.AnalyticsReport]
	generation  atomic.Uint64
	logger      logger.Logger
	now         func() time.Time
}

func NewAnalyticsService(
	requestRepo repository.ServiceRequestRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	log logger.Logger,
	cfg *models.Config,
) *AnalyticsService {
	return &AnalyticsService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		cache:       expirable.NewLRU[string, *models.AnalyticsReport](cfg.AnalyticsCacheSize, nil, cfg.AnalyticsCacheTTL),
		logger:      log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetAnalytics returns the report for window, served from cache while no request has changed
func (s *AnalyticsService) GetAnalytics(ctx context.Context, window models.AnalyticsWindow) (*models.AnalyticsReport, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}
	window.From, window.To = window.From.UTC(), window.To.UTC()

	key := fmt.Sprintf("%d|%d|%s", window.From.UnixNano(), window.To.UnixNano(), window.Granularity)
	if report, ok := s.cache.Get(key); ok {
		s.logger.Debugf("Analytics cache hit for %s", key)
		return report, nil
	}

	gen := s.generation.Load()
	requests, err := s.requestRepo.FindServiceRequests(ctx, models.ServiceRequestFilter{})
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsersByRoles(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	report := ComputeAnalytics(requests, byID, window, s.now())
	// a mutation that landed while loading makes this report stale
	if s.generation.Load() == gen {
		s.cache.Add(key, report)
	}
	s.logger.Infof("Computed analytics over %d requests for %s - %s (%s)", len(requests), window.From.Format(time.RFC3339), window.To.Format(time.RFC3339), window.Granularity)
	return report, nil
}

// Invalidate drops every cached report
func (s *AnalyticsService) Invalidate() {
	s.generation.Add(1)
	s.cache.Purge()
}

func validateWindow(window models.AnalyticsWindow) error {
	if !window.Granularity.IsValid() {
		return fmt.Errorf("%w: granularity must be daily, weekly or monthly", models.ErrValidation)
	}
	if window.From.IsZero() || window.To.IsZero() {
		return fmt.Errorf("%w: window start and end are required", models.ErrValidation)
	}
	if !window.From.Before(window.To) {
		return fmt.Errorf("%w: window start must be before its end", models.ErrValidation)
	}
	if BucketCount(window, maxTrendBuckets) > maxTrendBuckets {
		return fmt.Errorf("%w: window is too long for %s granularity", models.ErrValidation, window.Granularity)
	}
	return nil
}
