package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fusionware/storefront/internal/domain"
)

// PurchaseRepository stores customer order history.
type PurchaseRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Purchase, error)
	Create(ctx context.Context, purchase *domain.Purchase) error
}

type memoryPurchaseRepository struct {
	mu    sync.RWMutex
	items []domain.Purchase
}

// NewMemoryPurchaseRepository returns an in-memory store holding a copy of seed.
func NewMemoryPurchaseRepository(seed []domain.Purchase) PurchaseRepository {
	return &memoryPurchaseRepository{items: append([]domain.Purchase(nil), seed...)}
}

func (r *memoryPurchaseRepository) ListByUser(_ context.Context, userID string) ([]domain.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Purchase{}
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryPurchaseRepository) Create(_ context.Context, purchase *domain.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]domain.Purchase, 0, len(r.items)+1)
	items = append(items, *purchase)
	r.items = append(items, r.items...)
	return nil
}

type purchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository returns a Postgres-backed implementation.
func NewPurchaseRepository(pool *pgxpool.Pool) PurchaseRepository {
	return &purchaseRepository{pool: pool}
}

func (r *purchaseRepository) ListByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	const query = `
        SELECT id, user_id, product_name, duration, purchase_date, expiry_date, status, price, download_url
        FROM purchases WHERE user_id=$1 ORDER BY seq DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Purchase{}
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.ProductName,
			&p.Duration,
			&p.PurchaseDate,
			&p.ExpiryDate,
			&p.Status,
			&p.Price,
			&p.DownloadURL,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	const query = `
        INSERT INTO purchases (id, user_id, product_name, duration, purchase_date, expiry_date, status, price, download_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.pool.Exec(ctx, query,
		purchase.ID,
		purchase.UserID,
		purchase.ProductName,
		purchase.Duration,
		purchase.PurchaseDate,
		purchase.ExpiryDate,
		purchase.Status,
		purchase.Price,
		purchase.DownloadURL,
	)
	return err
}
