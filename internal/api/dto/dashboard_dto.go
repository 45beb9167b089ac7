package dto

import (
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// PurchaseResponse is one order history row.
type PurchaseResponse struct {
	ID            string                `json:"id"`
	ProductName   string                `json:"productName"`
	Duration      string                `json:"duration"`
	PurchaseDate  string                `json:"purchaseDate"`
	ExpiryDate    string                `json:"expiryDate"`
	Status        domain.PurchaseStatus `json:"status"`
	Price         float64               `json:"price"`
	DownloadURL   string                `json:"downloadUrl"`
	DaysRemaining int                   `json:"daysRemaining"`
}

// CustomerStatsResponse are the customer summary cards.
type CustomerStatsResponse struct {
	TotalPurchases int     `json:"totalPurchases"`
	ActiveLicenses int     `json:"activeLicenses"`
	TotalSpent     float64 `json:"totalSpent"`
	OpenTickets    int     `json:"openTickets"`
}

// CustomerDashboardResponse is GET /dashboard.
type CustomerDashboardResponse struct {
	User      UserResponse          `json:"user"`
	Stats     CustomerStatsResponse `json:"stats"`
	Purchases []PurchaseResponse    `json:"purchases"`
}

// AdminStatsResponse are the back-office counters.
type AdminStatsResponse struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalSales     int     `json:"totalSales"`
	ActiveProducts int     `json:"activeProducts"`
	OpenTickets    int     `json:"openTickets"`
	Revenue        float64 `json:"revenue"`
	MonthlyGrowth  float64 `json:"monthlyGrowth"`
}

// ActivityResponse is one feed line.
type ActivityResponse struct {
	ID      int                 `json:"id"`
	Type    domain.ActivityType `json:"type"`
	Message string              `json:"message"`
	Time    string              `json:"time"`
}

// AdminDashboardResponse is GET /admin/dashboard.
type AdminDashboardResponse struct {
	Stats          AdminStatsResponse `json:"stats"`
	RecentActivity []ActivityResponse `json:"recentActivity"`
}

// MetricsResponse exposes the in-process request counters.
type MetricsResponse struct {
	TotalRequests    int64            `json:"totalRequests"`
	AverageLatencyMs float64          `json:"averageLatencyMs"`
	Requests         map[string]int64 `json:"requests"`
	Errors           map[string]int64 `json:"errors"`
}

// ServiceStatusResponse is a status-page card.
type ServiceStatusResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Status      domain.ServiceState `json:"status"`
	Uptime      float64             `json:"uptime"`
	LastChecked time.Time           `json:"lastChecked"`
	Description string              `json:"description"`
}

// IncidentUpdateResponse is one incident timeline entry.
type IncidentUpdateResponse struct {
	Timestamp time.Time             `json:"timestamp"`
	Message   string                `json:"message"`
	Status    domain.IncidentStatus `json:"status"`
}

// IncidentResponse is a published incident.
type IncidentResponse struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Status      domain.IncidentStatus    `json:"status"`
	Severity    domain.IncidentSeverity  `json:"severity"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
	Description string                   `json:"description"`
	Updates     []IncidentUpdateResponse `json:"updates"`
}

// StatusResponse is GET /status.
type StatusResponse struct {
	Overall     string                  `json:"overall"`
	Services    []ServiceStatusResponse `json:"services"`
	Incidents   []IncidentResponse      `json:"incidents"`
	LastUpdated time.Time               `json:"lastUpdated"`
}

// ContactRequest payload.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ProfileRequest payload; also the response shape.
type ProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
}
