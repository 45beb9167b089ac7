package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

func TestCustomerDashboard(t *testing.T) {
	svc := NewDashboardService(DashboardDependencies{
		PurchaseRepo: repository.NewMemoryPurchaseRepository(repository.SeedPurchases()),
		TicketRepo:   repository.NewMemoryTicketRepository(repository.SeedTickets()),
		Clock:        testClock,
	})

	dash, err := svc.Customer(context.Background(), customerUser)
	require.NoError(t, err)
	assert.Equal(t, 3, dash.Stats.TotalPurchases)
	assert.Equal(t, 2, dash.Stats.ActiveLicenses)
	assert.InDelta(t, 259.97, dash.Stats.TotalSpent, 0.001)
	assert.Equal(t, 2, dash.Stats.OpenTickets)
	require.Len(t, dash.Purchases, 3)
	assert.Equal(t, 22, dash.Purchases[0].DaysRemaining)
	assert.Equal(t, -40, dash.Purchases[2].DaysRemaining)

	empty, err := svc.Customer(context.Background(), adminUser)
	require.NoError(t, err)
	assert.Zero(t, empty.Stats.TotalPurchases)
}

func TestAdminDashboardIsStatic(t *testing.T) {
	svc := NewDashboardService(DashboardDependencies{
		AdminStats: repository.SeedAdminStats(),
		Activity:   repository.SeedActivity(),
	})
	dash := svc.Admin(context.Background())
	assert.Equal(t, 1247, dash.Stats.TotalUsers)
	assert.InDelta(t, 89750.5, dash.Stats.Revenue, 0.001)
	assert.Len(t, dash.Activity, 4)
}

func TestStatusServiceRefresh(t *testing.T) {
	now := testNow
	svc := NewStatusService(StatusDependencies{
		Services:  repository.SeedServices(),
		Incidents: repository.SeedIncidents(),
		Clock:     func() time.Time { return now },
	})

	snap := svc.Snapshot(context.Background())
	assert.Equal(t, OverallPartial, snap.Overall)
	assert.Len(t, snap.Services, 5)
	assert.Equal(t, testNow, snap.LastUpdated)

	now = now.Add(time.Minute)
	refreshed := svc.Refresh(context.Background())
	assert.Equal(t, testNow.Add(time.Minute), refreshed.LastUpdated)
	assert.Equal(t, snap.Services, refreshed.Services)
}

func TestOverallStatus(t *testing.T) {
	ok := []domain.ServiceStatus{{Status: domain.ServiceOperational}}
	assert.Equal(t, OverallOperational, OverallStatus(ok))
	assert.Equal(t, OverallOutage, OverallStatus(append(ok, domain.ServiceStatus{Status: domain.ServiceOutage})))
	assert.Equal(t, OverallPartial, OverallStatus(append(ok, domain.ServiceStatus{Status: domain.ServiceMaintenance})))
}

func TestContactSubmit(t *testing.T) {
	rec, dispatcher := newRecorder()
	svc := NewContactService(ContactDependencies{Dispatcher: dispatcher})

	ack, err := svc.Submit(context.Background(), domain.ContactMessage{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Question",
	})
	require.NoError(t, err)
	assert.Equal(t, ContactAcknowledgement, ack)
	assert.Len(t, rec.types(), 1)

	_, err = svc.Submit(context.Background(), domain.ContactMessage{Name: "Jane", Email: "jane", Subject: "Hi", Message: "Q"})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	_, err = svc.Submit(context.Background(), domain.ContactMessage{Name: "Jane", Email: "jane@example.com"})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
}

func TestProfileDefaultsAndUpdate(t *testing.T) {
	svc := NewProfileService(ProfileDependencies{ProfileRepo: repository.NewMemoryProfileRepository()})
	ctx := context.Background()

	p, err := svc.Get(ctx, customerUser)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "San Francisco, CA", p.Location)

	_, err = svc.Update(ctx, customerUser, ProfileInput{Name: "", Email: "x@y.z"})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = svc.Update(ctx, customerUser, ProfileInput{Name: "Johnny", Email: "user@example.com", Bio: "hi"})
	require.NoError(t, err)
	p, err = svc.Get(ctx, customerUser)
	require.NoError(t, err)
	assert.Equal(t, "Johnny", p.Name)
	assert.Equal(t, "hi", p.Bio)
	assert.Empty(t, p.Location)
}
