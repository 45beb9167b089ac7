package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/repository"
	"github.com/fusionware/storefront/pkg/listedit"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// SaveMode selects whether Save creates a product or edits an existing one.
type SaveMode int

const (
	ModeCreate SaveMode = iota
	ModeUpdate
)

// ProductDraft is the editable form state of a product.
type ProductDraft struct {
	Name             string
	Description      string
	ShortDescription string
	Price            float64
	Category         string
	Features         []string
	Durations        []domain.Duration
	Image            string
	Popular          bool
	Status           domain.ProductStatus
}

// NewProductDraft returns the blank form: one empty feature row and a
// single one-month tier.
func NewProductDraft() ProductDraft {
	return ProductDraft{
		Features:  []string{""},
		Durations: []domain.Duration{{Label: "1 Month", Days: 30, Price: 0}},
		Status:    domain.ProductStatusDraft,
	}
}

// DraftFromProduct loads a stored product into the form.
func DraftFromProduct(p domain.Product) ProductDraft {
	c := p.Clone()
	return ProductDraft{
		Name:             c.Name,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Price:            c.Price,
		Category:         c.Category,
		Features:         c.Features,
		Durations:        c.Durations,
		Image:            c.Image,
		Popular:          c.Popular,
		Status:           c.Status,
	}
}

// AddFeature appends an empty or given feature row.
func (d *ProductDraft) AddFeature(value string) {
	d.Features = listedit.Append(d.Features, value)
}

// RemoveFeature drops the feature at index.
func (d *ProductDraft) RemoveFeature(index int) error {
	out, err := listedit.RemoveAt(d.Features, index)
	if err != nil {
		return indexError("features", index, err)
	}
	d.Features = out
	return nil
}

// UpdateFeature replaces the feature at index.
func (d *ProductDraft) UpdateFeature(index int, value string) error {
	out, err := listedit.UpdateAt(d.Features, index, value)
	if err != nil {
		return indexError("features", index, err)
	}
	d.Features = out
	return nil
}

// AddDuration appends a tier.
func (d *ProductDraft) AddDuration(value domain.Duration) {
	d.Durations = listedit.Append(d.Durations, value)
}

// RemoveDuration drops the tier at index.
func (d *ProductDraft) RemoveDuration(index int) error {
	out, err := listedit.RemoveAt(d.Durations, index)
	if err != nil {
		return indexError("durations", index, err)
	}
	d.Durations = out
	return nil
}

// UpdateDuration replaces the tier at index.
func (d *ProductDraft) UpdateDuration(index int, value domain.Duration) error {
	out, err := listedit.UpdateAt(d.Durations, index, value)
	if err != nil {
		return indexError("durations", index, err)
	}
	d.Durations = out
	return nil
}

func indexError(list string, index int, err error) error {
	if errors.Is(err, listedit.ErrIndexOutOfRange) {
		return apperrors.NewValidationError(list+" index out of range", map[string]any{"index": index})
	}
	return apperrors.MapError(err)
}

// Validate checks the required fields and status.
func (d ProductDraft) Validate() error {
	if err := required(
		field{"name", d.Name},
		field{"description", d.Description},
		field{"category", d.Category},
	); err != nil {
		return err
	}
	if d.Status != "" && !d.Status.Valid() {
		return apperrors.NewValidationError("invalid status", map[string]any{"status": d.Status})
	}
	if d.Price < 0 {
		return apperrors.NewValidationError("price must not be negative", nil)
	}
	for i, dur := range d.Durations {
		if dur.Days < 0 || dur.Price < 0 {
			return apperrors.NewValidationError("invalid duration", map[string]any{"index": i})
		}
	}
	return nil
}

// ProductService implements back-office catalog management.
type ProductService struct {
	// mu serialises read-modify-write sequences on products.
	mu         sync.Mutex
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        Clock
}

// ProductDependencies bundles product service requirements.
type ProductDependencies struct {
	ProductRepo repository.ProductRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	Clock       Clock
}

// NewProductService constructs the service.
func NewProductService(deps ProductDependencies) *ProductService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		products:   deps.ProductRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        clockOrNow(deps.Clock),
	}
}

// List returns every product regardless of status.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return products, nil
}

// Get returns one product regardless of status.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "product", id)
	}
	return product, nil
}

// Save validates draft and either creates a new product at the head of the
// catalog or overwrites every editable field of product id in place.
func (s *ProductService) Save(ctx context.Context, actor domain.User, mode SaveMode, id string, draft ProductDraft) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, actor, mode, id, draft)
}

// Update loads product id, lets apply change its draft and saves the result
// as one step, so concurrent edits cannot overwrite each other.
func (s *ProductService) Update(ctx context.Context, actor domain.User, id string, apply func(*ProductDraft) error) (*domain.Product, error) {
	return s.edit(ctx, actor, id, apply)
}

func (s *ProductService) save(ctx context.Context, actor domain.User, mode SaveMode, id string, draft ProductDraft) (*domain.Product, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	now := s.now()

	switch mode {
	case ModeCreate:
		product := productFromDraft(draft)
		product.ID = uuid.NewString()
		product.CreatedAt = now
		product.UpdatedAt = now
		if err := s.products.Create(ctx, &product); err != nil {
			return nil, apperrors.MapError(err)
		}
		s.logger.Info("product created", zap.String("product_id", product.ID), zap.String("name", product.Name))
		s.publish(ctx, events.EventProductCreated, actor, product)
		return &product, nil
	case ModeUpdate:
		existing, err := s.products.GetByID(ctx, id)
		if err != nil {
			return nil, mapRepoError(err, "product", id)
		}
		product := productFromDraft(draft)
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
		product.UpdatedAt = now
		if err := s.products.Update(ctx, &product); err != nil {
			return nil, mapRepoError(err, "product", id)
		}
		s.logger.Info("product updated", zap.String("product_id", product.ID))
		s.publish(ctx, events.EventProductUpdated, actor, product)
		return &product, nil
	default:
		return nil, apperrors.NewValidationError("unknown save mode", nil)
	}
}

// Delete removes exactly the product with id.
func (s *ProductService) Delete(ctx context.Context, actor domain.User, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "product", id)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return mapRepoError(err, "product", id)
	}
	s.logger.Info("product deleted", zap.String("product_id", id))
	s.publish(ctx, events.EventProductDeleted, actor, *existing)
	return nil
}

// AddFeature appends a feature to a stored product.
func (s *ProductService) AddFeature(ctx context.Context, actor domain.User, id, value string) (*domain.Product, error) {
	return s.edit(ctx, actor, id, func(d *ProductDraft) error {
		d.AddFeature(value)
		return nil
	})
}

// UpdateFeature replaces a feature of a stored product.
func (s *ProductService) UpdateFeature(ctx context.Context, actor domain.User, id string, index int, value string) (*domain.Product, error) {
	return s.edit(ctx, actor, id, func(d *ProductDraft) error {
		return d.UpdateFeature(index, value)
	})
}

// RemoveFeature drops a feature of a stored product.
func (s *ProductService) RemoveFeature(ctx context.Context, actor domain.User, id string, index int) (*domain.Product, error) {
	return s.edit(ctx, actor, id, func(d *ProductDraft) error {
		return d.RemoveFeature(index)
	})
}

// AddDuration appends a tier to a stored product.
func (s *ProductService) AddDuration(ctx context.Context, actor domain.User, id string, value domain.Duration) (*domain.Product, error) {
	return s.edit(ctx, actor, id, func(d *ProductDraft) error {
		d.AddDuration(value)
		return nil
	})
}

// UpdateDuration replaces a tier of a stored product.
func (s *ProductService) UpdateDuration(ctx context.Context, actor domain.User, id string, index int, value domain.Duration) (*domain.Product, error) {
	return s.edit(ctx, actor, id, func(d *ProductDraft) error {
		return d.UpdateDuration(index, value)
	})
}

// RemoveDuration drops a tier of a stored product.
func (s *ProductService) RemoveDuration(ctx context.Context, actor domain.User, id string, index int) (*domain.Product, error) {
	return s.edit(ctx, actor, id, func(d *ProductDraft) error {
		return d.RemoveDuration(index)
	})
}

func (s *ProductService) edit(ctx context.Context, actor domain.User, id string, apply func(*ProductDraft) error) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "product", id)
	}
	draft := DraftFromProduct(*existing)
	if err := apply(&draft); err != nil {
		return nil, err
	}
	return s.save(ctx, actor, ModeUpdate, id, draft)
}

func (s *ProductService) publish(ctx context.Context, eventType events.EventType, actor domain.User, p domain.Product) {
	publishEvent(ctx, s.dispatcher, s.now, events.Event{
		Type:       eventType,
		ResourceID: p.ID,
		Actor:      events.ActorFor(actor),
		Payload:    events.ProductChangedPayload{Name: p.Name, Status: p.Status},
	})
}

func productFromDraft(d ProductDraft) domain.Product {
	status := d.Status
	if status == "" {
		status = domain.ProductStatusDraft
	}
	image := strings.TrimSpace(d.Image)
	if image == "" {
		image = domain.PlaceholderImage
	}
	features := append([]string{}, d.Features...)
	durations := append([]domain.Duration{}, d.Durations...)
	return domain.Product{
		Name:             strings.TrimSpace(d.Name),
		Description:      strings.TrimSpace(d.Description),
		ShortDescription: strings.TrimSpace(d.ShortDescription),
		Price:            d.Price,
		Category:         strings.TrimSpace(d.Category),
		Features:         features,
		Durations:        durations,
		Image:            image,
		Popular:          d.Popular,
		Status:           status,
	}
}
