package service

import (
	"context"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// DashboardService assembles the customer and admin landing pages.
type DashboardService struct {
	purchases repository.PurchaseRepository
	tickets   repository.TicketRepository
	stats     domain.AdminStats
	activity  []domain.Activity
	now       Clock
}

// DashboardDependencies bundles dashboard requirements.
type DashboardDependencies struct {
	PurchaseRepo repository.PurchaseRepository
	TicketRepo   repository.TicketRepository
	AdminStats   domain.AdminStats
	Activity     []domain.Activity
	Clock        Clock
}

// OwnedPurchase is a purchase with its remaining license days.
type OwnedPurchase struct {
	domain.Purchase
	DaysRemaining int
}

// CustomerDashboard is the signed-in customer's overview.
type CustomerDashboard struct {
	User      domain.User
	Stats     domain.CustomerStats
	Purchases []OwnedPurchase
}

// AdminDashboard is the back-office overview.
type AdminDashboard struct {
	Stats    domain.AdminStats
	Activity []domain.Activity
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	return &DashboardService{
		purchases: deps.PurchaseRepo,
		tickets:   deps.TicketRepo,
		stats:     deps.AdminStats,
		activity:  append([]domain.Activity(nil), deps.Activity...),
		now:       clockOrNow(deps.Clock),
	}
}

// Purchases returns the user's order history with days remaining.
func (s *DashboardService) Purchases(ctx context.Context, user domain.User) ([]OwnedPurchase, error) {
	purchases, err := s.purchases.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	now := s.now()
	out := make([]OwnedPurchase, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, OwnedPurchase{Purchase: p, DaysRemaining: p.DaysRemaining(now)})
	}
	return out, nil
}

// Customer builds the customer overview. Open tickets count the user's
// tickets that are open or in progress.
func (s *DashboardService) Customer(ctx context.Context, user domain.User) (*CustomerDashboard, error) {
	purchases, err := s.Purchases(ctx, user)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	stats := domain.CustomerStats{TotalPurchases: len(purchases)}
	for _, p := range purchases {
		if p.Status == domain.PurchaseStatusActive {
			stats.ActiveLicenses++
		}
		stats.TotalSpent += p.Price
	}
	for _, t := range tickets {
		if t.CustomerID != user.ID {
			continue
		}
		if t.Status == domain.TicketStatusOpen || t.Status == domain.TicketStatusInProgress {
			stats.OpenTickets++
		}
	}
	return &CustomerDashboard{User: user, Stats: stats, Purchases: purchases}, nil
}

// Admin returns the static back-office counters and activity feed.
func (s *DashboardService) Admin(_ context.Context) *AdminDashboard {
	return &AdminDashboard{
		Stats:    s.stats,
		Activity: append([]domain.Activity(nil), s.activity...),
	}
}
