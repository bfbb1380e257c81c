package port

import (
	"campus_security_backend/internal/core/domain"
	"context"
)

// PolicyService manages web filtering policies
type PolicyService interface {
	List(ctx context.Context) ([]domain.Policy, error)
	Create(ctx context.Context, req domain.PolicyCreateRequest) (*domain.Policy, error)
	Get(ctx context.Context, id string) (*domain.Policy, error)
	// Update changes only the supplied fields and always refreshes updated_at
	Update(ctx context.Context, id string, req domain.PolicyUpdateRequest) (*domain.Policy, error)
	Delete(ctx context.Context, id string) error
}

// DeviceService manages the network device inventory
type DeviceService interface {
	List(ctx context.Context) ([]domain.Device, error)
	Create(ctx context.Context, req domain.DeviceRequest) (*domain.Device, error)
	Get(ctx context.Context, id string) (*domain.Device, error)
	// Update replaces every mutable field with the payload
	Update(ctx context.Context, id string, req domain.DeviceRequest) (*domain.Device, error)
	Delete(ctx context.Context, id string) error
}

// AlertService records security alerts. Alerts are never deleted.
type AlertService interface {
	// List returns alerts newest first
	List(ctx context.Context) ([]domain.Alert, error)
	Create(ctx context.Context, req domain.AlertCreateRequest) (*domain.Alert, error)
	Resolve(ctx context.Context, id string) error
}

// StatsService computes the dashboard snapshot
type StatsService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}

// DemoSeeder resets all collections to the fixed demo data set
type DemoSeeder interface {
	Initialize(ctx context.Context) error
}
