package service

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"fmt"
	"log"
	"time"
)

// alertSpacing separates the creation times of the seeded alerts
const alertSpacing = time.Minute

type DemoSeederImpl struct {
	repos *Repositories
	clock Clock
	ids   IDGenerator
}

func NewDemoSeeder(repos *Repositories, clock Clock, ids IDGenerator) port.DemoSeeder {
	return &DemoSeederImpl{repos: repos, clock: clock, ids: ids}
}

// Initialize wipes all three collections and inserts the demo data set.
// Any user-created record is lost.
func (s *DemoSeederImpl) Initialize(ctx context.Context) error {
	collections := []struct {
		name  string
		clear func(context.Context) (int64, error)
	}{
		{"policies", s.repos.Policies.Clear},
		{"devices", s.repos.Devices.Clear},
		{"alerts", s.repos.Alerts.Clear},
	}
	for _, c := range collections {
		n, err := c.clear(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", c.name, err)
		}
		log.Printf("[Seeder] Removed %d %s", n, c.name)
	}

	now := s.clock.Now()

	for _, req := range demoPolicies() {
		policy := req.NewPolicy()
		policy.ID = s.ids.New()
		policy.CreatedAt = now
		policy.UpdatedAt = now
		if err := s.repos.Policies.Insert(ctx, policy); err != nil {
			return fmt.Errorf("failed to seed policy %q: %w", policy.Name, err)
		}
	}

	for _, req := range demoDevices() {
		device := req.NewDevice()
		device.ID = s.ids.New()
		device.CreatedAt = now
		if err := s.repos.Devices.Insert(ctx, device); err != nil {
			return fmt.Errorf("failed to seed device %q: %w", device.Name, err)
		}
	}

	// Seeded alerts are a minute apart, the last one at now.
	alerts := demoAlerts()
	for i, seed := range alerts {
		alert := seed.req.NewAlert()
		alert.ID = s.ids.New()
		alert.CreatedAt = now.Add(-time.Duration(len(alerts)-1-i) * alertSpacing)
		if seed.resolved {
			resolvedAt := now
			alert.Resolved = true
			alert.ResolvedAt = &resolvedAt
		}
		if err := s.repos.Alerts.Insert(ctx, alert); err != nil {
			return fmt.Errorf("failed to seed alert %q: %w", alert.Title, err)
		}
	}

	log.Println("[Seeder] Demo data initialized")
	return nil
}

func str(s string) *string { return &s }

func demoPolicies() []domain.PolicyCreateRequest {
	enabled := true
	one, two := 1, 2
	return []domain.PolicyCreateRequest{
		{
			Name:        str("Block Social Media"),
			Description: str("Block access to social media sites during study hours"),
			Category:    domain.CategorySocialMedia,
			Action:      domain.ActionBlock,
			Domains:     []string{"facebook.com", "instagram.com", "twitter.com", "tiktok.com"},
			Keywords:    []string{"social", "chat", "messaging"},
			Enabled:     &enabled,
			Priority:    &one,
		},
		{
			Name:        str("Allow Educational Resources"),
			Description: str("Allow access to educational and research websites"),
			Category:    domain.CategoryEducation,
			Action:      domain.ActionAllow,
			Domains:     []string{"edu", "coursera.com", "khan-academy.org", "google.scholar"},
			Keywords:    []string{"education", "learning", "research"},
			Enabled:     &enabled,
			Priority:    &two,
		},
		{
			Name:        str("Block Streaming Services"),
			Description: str("Block video streaming to conserve bandwidth"),
			Category:    domain.CategoryStreaming,
			Action:      domain.ActionBlock,
			Domains:     []string{"netflix.com", "youtube.com", "twitch.tv", "spotify.com"},
			Keywords:    []string{"streaming", "video", "music"},
			Enabled:     &enabled,
			Priority:    &one,
		},
		{
			Name:        str("Block Gaming Sites"),
			Description: str("Block gaming websites to maintain productivity"),
			Category:    domain.CategoryGaming,
			Action:      domain.ActionBlock,
			Domains:     []string{"steam.com", "epic.games", "roblox.com", "minecraft.net"},
			Keywords:    []string{"gaming", "games", "play"},
			Enabled:     &enabled,
			Priority:    &one,
		},
	}
}

// Connections use slug labels, not generated ids.
func demoDevices() []domain.DeviceRequest {
	return []domain.DeviceRequest{
		{
			Name:        str("ISP Router"),
			DeviceType:  domain.DeviceRouter,
			IPAddress:   str("192.168.1.1"),
			Location:    str("Network Edge"),
			Description: str("Main ISP connection router"),
			Status:      domain.DeviceStatusActive,
			Position:    &domain.Position{X: 100, Y: 50},
			Connections: []string{"fortigate-utm"},
		},
		{
			Name:        str("FortiGate UTM"),
			DeviceType:  domain.DeviceUTM,
			IPAddress:   str("192.168.1.10"),
			Location:    str("Security Zone"),
			Description: str("Fortinet FortiGate UTM appliance for web filtering"),
			Status:      domain.DeviceStatusActive,
			Position:    &domain.Position{X: 300, Y: 50},
			Connections: []string{"isp-router", "core-switch"},
		},
		{
			Name:        str("Core Switch"),
			DeviceType:  domain.DeviceSwitch,
			IPAddress:   str("192.168.1.20"),
			Location:    str("Network Core"),
			Description: str("Main campus network switch"),
			Status:      domain.DeviceStatusActive,
			Position:    &domain.Position{X: 500, Y: 50},
			Connections: []string{"fortigate-utm", "student-devices"},
		},
		{
			Name:        str("Student Devices"),
			DeviceType:  domain.DeviceStudentDevice,
			IPAddress:   str("192.168.100.0/24"),
			Location:    str("Campus Network"),
			Description: str("Student laptops and devices"),
			Status:      domain.DeviceStatusActive,
			Position:    &domain.Position{X: 700, Y: 50},
			Connections: []string{"core-switch"},
		},
	}
}

type demoAlert struct {
	req      domain.AlertCreateRequest
	resolved bool
}

func demoAlerts() []demoAlert {
	return []demoAlert{
		{req: domain.AlertCreateRequest{
			Title:           str("Blocked Social Media Access"),
			Description:     str("Student attempted to access Facebook during study hours"),
			Severity:        domain.SeverityMedium,
			SourceIP:        str("192.168.100.45"),
			Destination:     str("facebook.com"),
			PolicyTriggered: str("Block Social Media"),
			DeviceID:        str("fortigate-utm"),
		}},
		{req: domain.AlertCreateRequest{
			Title:           str("Malware Detection"),
			Description:     str("Potential malware detected from suspicious domain"),
			Severity:        domain.SeverityHigh,
			SourceIP:        str("192.168.100.23"),
			Destination:     str("suspicious-site.com"),
			PolicyTriggered: str("Block Malware"),
			DeviceID:        str("fortigate-utm"),
		}},
		{req: domain.AlertCreateRequest{
			Title:           str("Bandwidth Threshold Exceeded"),
			Description:     str("High bandwidth usage detected from streaming"),
			Severity:        domain.SeverityLow,
			SourceIP:        str("192.168.100.67"),
			Destination:     str("netflix.com"),
			PolicyTriggered: str("Block Streaming Services"),
			DeviceID:        str("fortigate-utm"),
		}, resolved: true},
	}
}
