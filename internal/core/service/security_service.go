package service

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"fmt"
)

type PolicyServiceImpl struct {
	repo  *Repository[domain.Policy]
	clock Clock
	ids   IDGenerator
}

func NewPolicyService(repo *Repository[domain.Policy], clock Clock, ids IDGenerator) port.PolicyService {
	return &PolicyServiceImpl{repo: repo, clock: clock, ids: ids}
}

func (s *PolicyServiceImpl) List(ctx context.Context) ([]domain.Policy, error) {
	return s.repo.List(ctx)
}

func (s *PolicyServiceImpl) Create(ctx context.Context, req domain.PolicyCreateRequest) (*domain.Policy, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	policy := req.NewPolicy()
	policy.ID = s.ids.New()
	policy.CreatedAt = s.clock.Now()
	policy.UpdatedAt = policy.CreatedAt

	if err := s.repo.Insert(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}
	return &policy, nil
}

func (s *PolicyServiceImpl) Get(ctx context.Context, id string) (*domain.Policy, error) {
	return s.repo.Get(ctx, id)
}

// Update changes only the supplied fields; updated_at is refreshed even when
// the request carries none, and always moves past its previous value.
func (s *PolicyServiceImpl) Update(ctx context.Context, id string, req domain.PolicyUpdateRequest) (*domain.Policy, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prev, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := req.Changes()
	set["updated_at"] = after(prev.UpdatedAt, s.clock.Now())
	return s.repo.Update(ctx, id, set)
}

func (s *PolicyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type DeviceServiceImpl struct {
	repo  *Repository[domain.Device]
	clock Clock
	ids   IDGenerator
}

func NewDeviceService(repo *Repository[domain.Device], clock Clock, ids IDGenerator) port.DeviceService {
	return &DeviceServiceImpl{repo: repo, clock: clock, ids: ids}
}

func (s *DeviceServiceImpl) List(ctx context.Context) ([]domain.Device, error) {
	return s.repo.List(ctx)
}

func (s *DeviceServiceImpl) Create(ctx context.Context, req domain.DeviceRequest) (*domain.Device, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	device := req.NewDevice()
	device.ID = s.ids.New()
	device.CreatedAt = s.clock.Now()

	if err := s.repo.Insert(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	return &device, nil
}

func (s *DeviceServiceImpl) Get(ctx context.Context, id string) (*domain.Device, error) {
	return s.repo.Get(ctx, id)
}

// Update treats the payload as authoritative: omitted optional fields are
// reset to their defaults.
func (s *DeviceServiceImpl) Update(ctx context.Context, id string, req domain.DeviceRequest) (*domain.Device, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req.Replacement())
}

func (s *DeviceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type AlertServiceImpl struct {
	repo  *Repository[domain.Alert]
	clock Clock
	ids   IDGenerator
}

func NewAlertService(repo *Repository[domain.Alert], clock Clock, ids IDGenerator) port.AlertService {
	return &AlertServiceImpl{repo: repo, clock: clock, ids: ids}
}

func (s *AlertServiceImpl) List(ctx context.Context) ([]domain.Alert, error) {
	return s.repo.List(ctx)
}

func (s *AlertServiceImpl) Create(ctx context.Context, req domain.AlertCreateRequest) (*domain.Alert, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	alert := req.NewAlert()
	alert.ID = s.ids.New()
	alert.CreatedAt = s.clock.Now()

	if err := s.repo.Insert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return &alert, nil
}

// Resolve marks the alert resolved. Resolving twice refreshes resolved_at.
func (s *AlertServiceImpl) Resolve(ctx context.Context, id string) error {
	return s.repo.Patch(ctx, id, map[string]any{
		"resolved":    true,
		"resolved_at": s.clock.Now(),
	})
}
