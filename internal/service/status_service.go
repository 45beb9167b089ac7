package service

import (
	"context"
	"sync"
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// Overall status headlines.
const (
	OverallOperational = "All Systems Operational"
	OverallOutage      = "System Outage"
	OverallPartial     = "Partial System Outage"
)

// StatusService serves the public status page.
type StatusService struct {
	mu          sync.RWMutex
	services    []domain.ServiceStatus
	incidents   []domain.Incident
	lastUpdated time.Time
	now         Clock
}

// StatusDependencies bundles status page data.
type StatusDependencies struct {
	Services  []domain.ServiceStatus
	Incidents []domain.Incident
	Clock     Clock
}

// StatusSnapshot is everything the status page renders.
type StatusSnapshot struct {
	Overall     string
	Services    []domain.ServiceStatus
	Incidents   []domain.Incident
	LastUpdated time.Time
}

// NewStatusService constructs the service stamped with the current time.
func NewStatusService(deps StatusDependencies) *StatusService {
	now := clockOrNow(deps.Clock)
	return &StatusService{
		services:    append([]domain.ServiceStatus(nil), deps.Services...),
		incidents:   append([]domain.Incident(nil), deps.Incidents...),
		lastUpdated: now(),
		now:         now,
	}
}

// OverallStatus summarises services: all operational, any outage, or partial.
func OverallStatus(services []domain.ServiceStatus) string {
	allOperational := true
	for _, s := range services {
		if s.Status == domain.ServiceOutage {
			return OverallOutage
		}
		if s.Status != domain.ServiceOperational {
			allOperational = false
		}
	}
	if allOperational {
		return OverallOperational
	}
	return OverallPartial
}

// Snapshot returns the current status page.
func (s *StatusService) Snapshot(_ context.Context) StatusSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatusSnapshot{
		Overall:     OverallStatus(s.services),
		Services:    append([]domain.ServiceStatus(nil), s.services...),
		Incidents:   append([]domain.Incident(nil), s.incidents...),
		LastUpdated: s.lastUpdated,
	}
}

// Refresh re-stamps the last-updated time; the data itself is static.
func (s *StatusService) Refresh(ctx context.Context) StatusSnapshot {
	s.mu.Lock()
	s.lastUpdated = s.now()
	s.mu.Unlock()
	return s.Snapshot(ctx)
}
