package domain

import "time"

// ServiceState is the health of one platform service.
type ServiceState string

const (
	ServiceOperational ServiceState = "operational"
	ServiceDegraded    ServiceState = "degraded"
	ServiceOutage      ServiceState = "outage"
	ServiceMaintenance ServiceState = "maintenance"
)

// ServiceStatus is a status-page card.
type ServiceStatus struct {
	ID          string
	Name        string
	Status      ServiceState
	Uptime      float64
	LastChecked time.Time
	Description string
}

// IncidentStatus tracks incident handling progress.
type IncidentStatus string

const (
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentIdentified    IncidentStatus = "identified"
	IncidentMonitoring    IncidentStatus = "monitoring"
	IncidentResolved      IncidentStatus = "resolved"
)

// IncidentSeverity ranks incident impact.
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "low"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityHigh     IncidentSeverity = "high"
	SeverityCritical IncidentSeverity = "critical"
)

// IncidentUpdate is one timeline entry, newest first.
type IncidentUpdate struct {
	Timestamp time.Time
	Message   string
	Status    IncidentStatus
}

// Incident is a published outage or degradation notice.
type Incident struct {
	ID          string
	Title       string
	Status      IncidentStatus
	Severity    IncidentSeverity
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Description string
	Updates     []IncidentUpdate
}
