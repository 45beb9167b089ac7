package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fusionware/storefront/internal/domain"
)

const productColumns = `id, name, description, short_description, price, category, features, durations,
               image, popular, status, created_at, updated_at`

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	return result, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	return scanProduct(row)
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (id, name, description, short_description, price, category, features, durations,
                              image, popular, status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.ShortDescription,
		product.Price,
		product.Category,
		nonNilFeatures(product.Features),
		nonNilDurations(product.Durations),
		product.Image,
		product.Popular,
		product.Status,
		product.CreatedAt,
		product.UpdatedAt,
	)
	return err
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, description=$2, short_description=$3, price=$4, category=$5,
            features=$6, durations=$7, image=$8, popular=$9, status=$10, updated_at=$11
        WHERE id=$12`
	cmd, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.ShortDescription,
		product.Price,
		product.Category,
		nonNilFeatures(product.Features),
		nonNilDurations(product.Durations),
		product.Image,
		product.Popular,
		product.Status,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.ShortDescription,
		&product.Price,
		&product.Category,
		&product.Features,
		&product.Durations,
		&product.Image,
		&product.Popular,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func nonNilFeatures(features []string) []string {
	if features == nil {
		return []string{}
	}
	return features
}

func nonNilDurations(durations []domain.Duration) []domain.Duration {
	if durations == nil {
		return []domain.Duration{}
	}
	return durations
}
