package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SeedIfEmpty loads the launch data into an empty database. Tables are
// filled oldest first so that newest-first listing matches the seed order.
func SeedIfEmpty(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		logger.Debug("database already seeded")
		return nil
	}

	products := NewProductRepository(pool)
	seedProducts := SeedProducts()
	for i := len(seedProducts) - 1; i >= 0; i-- {
		if err := products.Create(ctx, &seedProducts[i]); err != nil {
			return fmt.Errorf("seed product %s: %w", seedProducts[i].ID, err)
		}
	}

	tickets := NewTicketRepository(pool)
	seedTickets := SeedTickets()
	for i := len(seedTickets) - 1; i >= 0; i-- {
		if err := tickets.Create(ctx, &seedTickets[i]); err != nil {
			return fmt.Errorf("seed ticket %s: %w", seedTickets[i].ID, err)
		}
	}

	purchases := NewPurchaseRepository(pool)
	seedPurchases := SeedPurchases()
	for i := len(seedPurchases) - 1; i >= 0; i-- {
		if err := purchases.Create(ctx, &seedPurchases[i]); err != nil {
			return fmt.Errorf("seed purchase %s: %w", seedPurchases[i].ID, err)
		}
	}

	logger.Info("database seeded",
		zap.Int("products", len(seedProducts)),
		zap.Int("tickets", len(seedTickets)),
		zap.Int("purchases", len(seedPurchases)),
	)
	return nil
}
