package repository

import (
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// Seed data mirrors the storefront's launch catalog and demo accounts. The
// in-memory store starts from it, and SeedIfEmpty copies it into Postgres.

const placeholderImage = domain.PlaceholderImage

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

// SeedProducts returns the launch catalog, in display order.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:               "1",
			Name:             "Game Enhancement Pro",
			Description:      "Advanced gaming enhancement tool with multiple features including aimbot, wallhack, and ESP. Designed for competitive gaming with undetectable algorithms.",
			ShortDescription: "Advanced gaming enhancement with multiple features",
			Price:            29.99,
			Category:         "gaming",
			Features:         []string{"Aimbot", "Wallhack", "ESP", "No Recoil", "Speed Hack"},
			Durations: []domain.Duration{
				{Label: "1 Day", Days: 1, Price: 9.99},
				{Label: "1 Week", Days: 7, Price: 19.99},
				{Label: "1 Month", Days: 30, Price: 29.99},
				{Label: "3 Months", Days: 90, Price: 79.99},
			},
			Image:     placeholderImage,
			Popular:   true,
			Status:    domain.ProductStatusActive,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
			UpdatedAt: ts("2024-01-15T00:00:00Z"),
		},
		{
			ID:               "2",
			Name:             "Productivity Suite",
			Description:      "Complete productivity enhancement package with automation tools, workflow optimization, and advanced analytics.",
			ShortDescription: "Complete productivity enhancement package",
			Price:            49.99,
			Category:         "productivity",
			Features:         []string{"Automation Tools", "Workflow Optimization", "Analytics", "Team Collaboration"},
			Durations: []domain.Duration{
				{Label: "1 Month", Days: 30, Price: 49.99},
				{Label: "6 Months", Days: 180, Price: 199.99},
				{Label: "1 Year", Days: 365, Price: 349.99},
			},
			Image:     placeholderImage,
			Popular:   false,
			Status:    domain.ProductStatusActive,
			CreatedAt: ts("2024-01-02T00:00:00Z"),
			UpdatedAt: ts("2024-01-10T00:00:00Z"),
		},
		{
			ID:               "3",
			Name:             "Security Shield",
			Description:      "Advanced security suite with real-time protection, privacy tools, and secure browsing capabilities.",
			ShortDescription: "Advanced security and privacy protection",
			Price:            39.99,
			Category:         "security",
			Features:         []string{"Real-time Protection", "Privacy Tools", "Secure Browsing", "VPN Access"},
			Durations: []domain.Duration{
				{Label: "1 Month", Days: 30, Price: 39.99},
				{Label: "6 Months", Days: 180, Price: 179.99},
				{Label: "1 Year", Days: 365, Price: 299.99},
			},
			Image:     placeholderImage,
			Popular:   true,
			Status:    domain.ProductStatusActive,
			CreatedAt: ts("2024-01-03T00:00:00Z"),
			UpdatedAt: ts("2024-01-12T00:00:00Z"),
		},
	}
}

// SeedTickets returns the demo support queue, newest-first as displayed.
// TK-001..TK-003 belong to the demo customer account (id 2).
func SeedTickets() []domain.Ticket {
	return []domain.Ticket{
		{
			ID:            "TK-001",
			Subject:       "Download link not working",
			Description:   "I purchased Game Enhancement Pro but the download link is not working. Please help.",
			Status:        domain.TicketStatusInProgress,
			Priority:      domain.TicketPriorityHigh,
			Category:      "technical",
			CustomerID:    "2",
			CustomerName:  "John Doe",
			CustomerEmail: "user@example.com",
			AssignedTo:    strPtr("Support Agent 1"),
			CreatedAt:     ts("2024-01-10T10:00:00Z"),
			LastUpdate:    ts("2024-01-12T14:30:00Z"),
			Messages: []domain.TicketMessage{
				{ID: "1", Sender: domain.SenderCustomer, SenderName: "John Doe", Message: "I purchased Game Enhancement Pro but the download link is not working. Please help.", Timestamp: ts("2024-01-10T10:00:00Z")},
				{ID: "2", Sender: domain.SenderSupport, SenderName: "Support Agent 1", Message: "Hi John! I'm sorry to hear about the issue. I've checked your account and can see the purchase. Let me generate a new download link for you.", Timestamp: ts("2024-01-10T11:15:00Z")},
				{ID: "3", Sender: domain.SenderSupport, SenderName: "Support Agent 1", Message: "I've sent a new download link to your email address. Please check your inbox and spam folder. The link will be valid for 48 hours.", Timestamp: ts("2024-01-12T14:30:00Z")},
			},
		},
		{
			ID:            "TK-002",
			Subject:       "Feature request for new tool",
			Description:   "Would it be possible to add a new feature to the productivity suite?",
			Status:        domain.TicketStatusOpen,
			Priority:      domain.TicketPriorityMedium,
			Category:      "feature-request",
			CustomerID:    "2",
			CustomerName:  "John Doe",
			CustomerEmail: "user@example.com",
			CreatedAt:     ts("2024-01-08T15:30:00Z"),
			LastUpdate:    ts("2024-01-08T15:30:00Z"),
			Messages: []domain.TicketMessage{
				{ID: "1", Sender: domain.SenderCustomer, SenderName: "John Doe", Message: "Would it be possible to add a new feature to the productivity suite? I would love to see integration with calendar apps.", Timestamp: ts("2024-01-08T15:30:00Z")},
			},
		},
		{
			ID:            "TK-003",
			Subject:       "Refund request",
			Description:   "I would like to request a refund for my recent purchase.",
			Status:        domain.TicketStatusResolved,
			Priority:      domain.TicketPriorityMedium,
			Category:      "billing",
			CustomerID:    "2",
			CustomerName:  "John Doe",
			CustomerEmail: "user@example.com",
			AssignedTo:    strPtr("Support Agent 2"),
			CreatedAt:     ts("2024-01-05T09:00:00Z"),
			LastUpdate:    ts("2024-01-06T16:45:00Z"),
			Messages: []domain.TicketMessage{
				{ID: "1", Sender: domain.SenderCustomer, SenderName: "John Doe", Message: "I would like to request a refund for my recent purchase. The product doesn't meet my needs.", Timestamp: ts("2024-01-05T09:00:00Z")},
				{ID: "2", Sender: domain.SenderSupport, SenderName: "Support Agent 2", Message: "I understand your concern. I've processed your refund request. You should see the refund in your account within 3-5 business days.", Timestamp: ts("2024-01-06T16:45:00Z")},
			},
		},
		{
			ID:            "TK-004",
			Subject:       "Installation issues",
			Description:   "Having trouble installing the security software on Windows 11.",
			Status:        domain.TicketStatusOpen,
			Priority:      domain.TicketPriorityUrgent,
			Category:      "technical",
			CustomerName:  "Sarah Wilson",
			CustomerEmail: "sarah@example.com",
			CreatedAt:     ts("2024-01-15T08:00:00Z"),
			LastUpdate:    ts("2024-01-15T08:00:00Z"),
			Messages: []domain.TicketMessage{
				{ID: "1", Sender: domain.SenderCustomer, SenderName: "Sarah Wilson", Message: "I'm having trouble installing the security software on my Windows 11 machine. It keeps showing an error message.", Timestamp: ts("2024-01-15T08:00:00Z")},
			},
		},
	}
}

// SeedPurchases returns the demo customer's order history.
func SeedPurchases() []domain.Purchase {
	return []domain.Purchase{
		{
			ID:           "1",
			UserID:       "2",
			ProductName:  "Game Enhancement Pro",
			Duration:     "1 Month",
			PurchaseDate: day("2024-01-01"),
			ExpiryDate:   day("2024-02-01"),
			Status:       domain.PurchaseStatusActive,
			Price:        29.99,
			DownloadURL:  "/downloads/game-enhancement-pro",
		},
		{
			ID:           "2",
			UserID:       "2",
			ProductName:  "Security Shield",
			Duration:     "6 Months",
			PurchaseDate: day("2023-12-15"),
			ExpiryDate:   day("2024-06-15"),
			Status:       domain.PurchaseStatusActive,
			Price:        179.99,
			DownloadURL:  "/downloads/security-shield",
		},
		{
			ID:           "3",
			UserID:       "2",
			ProductName:  "Productivity Suite",
			Duration:     "1 Month",
			PurchaseDate: day("2023-11-01"),
			ExpiryDate:   day("2023-12-01"),
			Status:       domain.PurchaseStatusExpired,
			Price:        49.99,
			DownloadURL:  "/downloads/productivity-suite",
		},
	}
}

// SeedServices returns the status-page service cards.
func SeedServices() []domain.ServiceStatus {
	checked := ts("2024-01-15T10:30:00Z")
	return []domain.ServiceStatus{
		{ID: "1", Name: "Authentication Service", Status: domain.ServiceOperational, Uptime: 99.9, LastChecked: checked, Description: "User login and registration system"},
		{ID: "2", Name: "Payment Processing", Status: domain.ServiceOperational, Uptime: 99.8, LastChecked: checked, Description: "Payment gateway and transaction processing"},
		{ID: "3", Name: "Product Delivery", Status: domain.ServiceDegraded, Uptime: 98.5, LastChecked: checked, Description: "Digital product download and delivery system"},
		{ID: "4", Name: "Support System", Status: domain.ServiceOperational, Uptime: 99.7, LastChecked: checked, Description: "Customer support and ticketing system"},
		{ID: "5", Name: "API Services", Status: domain.ServiceOperational, Uptime: 99.9, LastChecked: checked, Description: "Core API and backend services"},
	}
}

// SeedIncidents returns the published incidents.
func SeedIncidents() []domain.Incident {
	return []domain.Incident{
		{
			ID:          "1",
			Title:       "Intermittent delays in product delivery",
			Status:      domain.IncidentMonitoring,
			Severity:    domain.SeverityMedium,
			CreatedAt:   ts("2024-01-15T08:00:00Z"),
			UpdatedAt:   ts("2024-01-15T10:15:00Z"),
			Description: "Some users may experience delays when downloading products",
			Updates: []domain.IncidentUpdate{
				{Timestamp: ts("2024-01-15T10:15:00Z"), Message: "We have implemented a fix and are monitoring the situation", Status: domain.IncidentMonitoring},
				{Timestamp: ts("2024-01-15T09:30:00Z"), Message: "Issue identified with delivery server load balancer", Status: domain.IncidentIdentified},
				{Timestamp: ts("2024-01-15T08:00:00Z"), Message: "We are investigating reports of slow download speeds", Status: domain.IncidentInvestigating},
			},
		},
	}
}

// SeedAdminStats returns the back-office headline counters.
func SeedAdminStats() domain.AdminStats {
	return domain.AdminStats{
		TotalUsers:     1247,
		TotalSales:     3892,
		ActiveProducts: 12,
		OpenTickets:    23,
		Revenue:        89750.5,
		MonthlyGrowth:  12.5,
	}
}

// SeedActivity returns the admin recent-activity feed.
func SeedActivity() []domain.Activity {
	return []domain.Activity{
		{ID: 1, Type: domain.ActivitySale, Message: "New purchase: Game Enhancement Pro", Time: "2 minutes ago"},
		{ID: 2, Type: domain.ActivityUser, Message: "New user registration: john@example.com", Time: "5 minutes ago"},
		{ID: 3, Type: domain.ActivityTicket, Message: "Support ticket #1234 created", Time: "10 minutes ago"},
		{ID: 4, Type: domain.ActivitySale, Message: "New purchase: Security Shield", Time: "15 minutes ago"},
	}
}
