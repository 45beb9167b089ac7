package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// defaultCategories are always offered by the shop filter, in this order.
var defaultCategories = []string{filterAll, "gaming", "productivity", "security"}

// CatalogService serves the public shop.
type CatalogService struct {
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        Clock
}

// CatalogDependencies bundles catalog requirements.
type CatalogDependencies struct {
	ProductRepo repository.ProductRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	Clock       Clock
}

// CatalogFilter narrows the shop listing.
type CatalogFilter struct {
	Search   string
	Category string
}

// PurchaseSelection is the tier a customer picked for a product.
type PurchaseSelection struct {
	Product  domain.Product
	Duration domain.Duration
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		products:   deps.ProductRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        clockOrNow(deps.Clock),
	}
}

// FilterProducts keeps products whose name or description contains search
// (case-insensitive) and whose category equals category, unless category is
// empty or "all". Input order is preserved.
func FilterProducts(products []domain.Product, search, category string) []domain.Product {
	search = strings.TrimSpace(search)
	out := []domain.Product{}
	for _, p := range products {
		if search != "" && !containsFold(p.Name, search) && !containsFold(p.Description, search) {
			continue
		}
		if !isWildcard(category) && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ActiveProducts returns every active product in display order.
func (s *CatalogService) ActiveProducts(ctx context.Context) ([]domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Status == domain.ProductStatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// List returns the active products matching filter.
func (s *CatalogService) List(ctx context.Context, filter CatalogFilter) ([]domain.Product, error) {
	active, err := s.ActiveProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(active, filter.Search, filter.Category), nil
}

// Get returns one active product.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "product", id)
	}
	if product.Status != domain.ProductStatusActive {
		return nil, apperrors.NewNotFound("product", map[string]any{"id": id})
	}
	return product, nil
}

// Categories lists the filter options: the defaults followed by any other
// category present in the active catalog.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	active, err := s.ActiveProducts(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(defaultCategories))
	out := append([]string(nil), defaultCategories...)
	for _, c := range out {
		seen[c] = struct{}{}
	}
	for _, p := range active {
		if _, ok := seen[p.Category]; ok || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}

// SelectDuration resolves a tier by label. An empty label picks the first tier.
func SelectDuration(product domain.Product, label string) (domain.Duration, error) {
	if len(product.Durations) == 0 {
		return domain.Duration{}, apperrors.NewValidationError("product has no purchasable durations", map[string]any{"product_id": product.ID})
	}
	if strings.TrimSpace(label) == "" {
		return product.Durations[0], nil
	}
	d, ok := product.DurationByLabel(label)
	if !ok {
		return domain.Duration{}, apperrors.NewValidationError("unknown duration", map[string]any{"duration": label})
	}
	return d, nil
}

// Purchase records the customer's intent to buy. Nothing is charged or stored.
func (s *CatalogService) Purchase(ctx context.Context, user domain.User, productID, label string) (*PurchaseSelection, error) {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	duration, err := SelectDuration(*product, label)
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchasing "+product.Name+" for "+duration.Label,
		zap.String("user_id", user.ID),
		zap.String("product_id", product.ID),
		zap.Float64("price", duration.Price),
	)
	publishEvent(ctx, s.dispatcher, s.now, events.Event{
		Type:       events.EventProductPurchaseRequested,
		ResourceID: product.ID,
		Actor:      events.ActorFor(user),
		Payload: events.PurchaseRequestedPayload{
			ProductName: product.Name,
			Duration:    duration.Label,
			Price:       duration.Price,
		},
	})
	return &PurchaseSelection{Product: *product, Duration: duration}, nil
}
