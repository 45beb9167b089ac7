package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

func names(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	products := repository.SeedProducts()

	assert.Equal(t, []string{"Security Shield"}, names(FilterProducts(products, "security", "")))
	assert.Equal(t, []string{"Security Shield"}, names(FilterProducts(products, "SECURITY", "all")))
	assert.Equal(t, []string{"Game Enhancement Pro"}, names(FilterProducts(products, "", "gaming")))
	assert.Equal(t, names(products), names(FilterProducts(products, "", "all")))
	// matches on description only
	assert.Equal(t, []string{"Productivity Suite"}, names(FilterProducts(products, "workflow", "")))

	for _, category := range []string{"", "all", "gaming", "security"} {
		assert.Empty(t, FilterProducts(products, "zzz-no-match", category), category)
	}
	assert.Empty(t, FilterProducts(products, "security", "gaming"))
}

func newCatalog(t *testing.T) (*CatalogService, repository.ProductRepository, *recorder) {
	t.Helper()
	rec, dispatcher := newRecorder()
	repo := repository.NewMemoryProductRepository(repository.SeedProducts())
	return NewCatalogService(CatalogDependencies{ProductRepo: repo, Dispatcher: dispatcher, Clock: testClock}), repo, rec
}

func TestCatalogHidesInactiveProducts(t *testing.T) {
	svc, repo, _ := newCatalog(t)
	ctx := context.Background()

	draft := domain.Product{ID: "d", Name: "Secret Tool", Category: "tools", Status: domain.ProductStatusDraft}
	require.NoError(t, repo.Create(ctx, &draft))

	list, err := svc.List(ctx, CatalogFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Game Enhancement Pro", "Productivity Suite", "Security Shield"}, names(list))

	_, err = svc.Get(ctx, "d")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "gaming", "productivity", "security"}, categories)
}

func TestCategoriesIncludeExtraActiveCategories(t *testing.T) {
	svc, repo, _ := newCatalog(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Product{ID: "x", Name: "Toolbox", Category: "utilities", Status: domain.ProductStatusActive}))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "gaming", "productivity", "security", "utilities"}, categories)
}

func TestSelectDuration(t *testing.T) {
	product := repository.SeedProducts()[0]

	d, err := SelectDuration(product, "")
	require.NoError(t, err)
	assert.Equal(t, "1 Day", d.Label)

	d, err = SelectDuration(product, "3 Months")
	require.NoError(t, err)
	assert.InDelta(t, 79.99, d.Price, 0.001)

	_, err = SelectDuration(product, "10 Years")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	product.Durations = nil
	_, err = SelectDuration(product, "")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
}

func TestPurchasePublishesEvent(t *testing.T) {
	svc, _, rec := newCatalog(t)

	selection, err := svc.Purchase(context.Background(), customerUser, "2", "6 Months")
	require.NoError(t, err)
	assert.Equal(t, "Productivity Suite", selection.Product.Name)
	assert.InDelta(t, 199.99, selection.Duration.Price, 0.001)
	assert.Equal(t, []events.EventType{events.EventProductPurchaseRequested}, rec.types())

	_, err = svc.Purchase(context.Background(), customerUser, "404", "")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}
