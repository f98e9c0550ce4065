package services

import (
	"context"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

// HealthService probes backend reachability and serves the dashboard
// counters screen.
type HealthService interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type healthService struct {
	gw Gateway
}

func NewHealthService(gw Gateway) HealthService {
	return &healthService{gw: gw}
}

// Ping hits the health endpoint; any gateway error means unreachable.
func (s *healthService) Ping(ctx context.Context) error {
	var out struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	return s.gw.Get(ctx, "/api/health", &out)
}

func (s *healthService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.gw.Get(ctx, "/api/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
