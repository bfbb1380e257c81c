package service

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"fmt"
)

// Request counters are placeholders until traffic logs are ingested.
const (
	BlockedRequestsToday = 142
	AllowedRequestsToday = 2891
)

type StatsServiceImpl struct {
	repos *Repositories
}

func NewStatsService(repos *Repositories) port.StatsService {
	return &StatsServiceImpl{repos: repos}
}

// GetStats runs six independent counts against the live collections
func (s *StatsServiceImpl) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{
		BlockedRequestsToday: BlockedRequestsToday,
		AllowedRequestsToday: AllowedRequestsToday,
	}

	counts := []struct {
		name   string
		count  func(context.Context, port.Filter) (int64, error)
		filter port.Filter
		dst    *int64
	}{
		{"policies", s.repos.Policies.Count, nil, &stats.TotalPolicies},
		{"active policies", s.repos.Policies.Count, port.Filter{"enabled": true}, &stats.ActivePolicies},
		{"devices", s.repos.Devices.Count, nil, &stats.TotalDevices},
		{"active devices", s.repos.Devices.Count, port.Filter{"status": domain.DeviceStatusActive}, &stats.ActiveDevices},
		{"alerts", s.repos.Alerts.Count, nil, &stats.TotalAlerts},
		{"unresolved alerts", s.repos.Alerts.Count, port.Filter{"resolved": false}, &stats.UnresolvedAlerts},
	}

	for _, c := range counts {
		n, err := c.count(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	return stats, nil
}
