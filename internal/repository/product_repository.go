package repository

import (
	"context"
	"sync"

	"github.com/fusionware/storefront/internal/domain"
)

// ProductRepository encapsulates catalog persistence. List returns products
// in display order, newest first.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type memoryProductRepository struct {
	mu    sync.RWMutex
	items []domain.Product
}

// NewMemoryProductRepository returns an in-memory store holding a copy of seed.
func NewMemoryProductRepository(seed []domain.Product) ProductRepository {
	items := make([]domain.Product, 0, len(seed))
	for _, p := range seed {
		items = append(items, p.Clone())
	}
	return &memoryProductRepository{items: items}
}

func (r *memoryProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *memoryProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	p := r.items[idx].Clone()
	return &p, nil
}

func (r *memoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]domain.Product, 0, len(r.items)+1)
	items = append(items, product.Clone())
	r.items = append(items, r.items...)
	return nil
}

func (r *memoryProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(product.ID)
	if idx < 0 {
		return ErrNotFound
	}
	r.items[idx] = product.Clone()
	return nil
}

func (r *memoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
	return nil
}

func (r *memoryProductRepository) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
