package domain

// AdminStats are the back-office headline counters.
type AdminStats struct {
	TotalUsers     int
	TotalSales     int
	ActiveProducts int
	OpenTickets    int
	Revenue        float64
	MonthlyGrowth  float64
}

// ActivityType classifies recent-activity feed entries.
type ActivityType string

const (
	ActivitySale   ActivityType = "sale"
	ActivityUser   ActivityType = "user"
	ActivityTicket ActivityType = "ticket"
)

// Activity is one line of the admin activity feed.
type Activity struct {
	ID      int
	Type    ActivityType
	Message string
	Time    string
}

// CustomerStats summarise a customer's account.
type CustomerStats struct {
	TotalPurchases int
	ActiveLicenses int
	TotalSpent     float64
	OpenTickets    int
}

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	Name     string
	Email    string
	Subject  string
	Category string
	Message  string
}
