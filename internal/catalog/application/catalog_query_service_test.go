package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendly/pricetrack/internal/catalog/domain"
	"github.com/trendly/pricetrack/internal/catalog/infrastructure/persistence/memory"
)

func newTestCatalog(t *testing.T) (*CatalogCommandService, *CatalogQueryService) {
	t.Helper()
	products := memory.NewProductRepository()
	history := memory.NewPriceHistoryRepository()
	return NewCatalogCommandService(products, history, nil), NewCatalogQueryService(products, history)
}

func mustCreate(t *testing.T, cmd *CatalogCommandService, c CreateProductCommand) *domain.Product {
	t.Helper()
	p, err := cmd.CreateProduct(context.Background(), c)
	require.NoError(t, err)
	return p
}

func TestSearchProducts(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	mustCreate(t, cmd, CreateProductCommand{Name: "iPhone 15 Pro", Description: "256GB, Titanium", Category: "Electronics"})
	mustCreate(t, cmd, CreateProductCommand{Name: "Nike Air Max 270", Description: "Running shoes", Category: "Fashion"})

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{
			name:  "case-insensitive name match",
			query: "iphone",
			want:  []string{"iPhone 15 Pro"},
		},
		{
			name:  "description match",
			query: "running",
			want:  []string{"Nike Air Max 270"},
		},
		{
			name:     "category filter",
			query:    "",
			category: "Fashion",
			want:     []string{"Nike Air Max 270"},
		},
		{
			name:     "sentinel category matches everything",
			query:    "",
			category: AllCategories,
			want:     []string{"iPhone 15 Pro", "Nike Air Max 270"},
		},
		{
			name:  "no match",
			query: "playstation",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.SearchProducts(ctx, tt.query, tt.category)
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestTrendingProducts(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	// discounts: 33.4%, 5%, 0% (zero original price), 16.7%
	mustCreate(t, cmd, CreateProductCommand{Name: "headphones", CurrentPrice: 199, OriginalPrice: 299})
	mustCreate(t, cmd, CreateProductCommand{Name: "macbook", CurrentPrice: 1899, OriginalPrice: 1999})
	mustCreate(t, cmd, CreateProductCommand{Name: "freebie", CurrentPrice: 10, OriginalPrice: 0})
	mustCreate(t, cmd, CreateProductCommand{Name: "ps5", CurrentPrice: 499, OriginalPrice: 599})

	got, err := query.TrendingProducts(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "headphones", got[0].Name)
	assert.Equal(t, "ps5", got[1].Name)
	assert.Equal(t, "macbook", got[2].Name)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].DiscountPercent(), got[i].DiscountPercent())
	}
}

func TestTrendingProductsStableTieBreak(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	// identical discounts keep insertion order
	mustCreate(t, cmd, CreateProductCommand{Name: "first", CurrentPrice: 50, OriginalPrice: 100})
	mustCreate(t, cmd, CreateProductCommand{Name: "second", CurrentPrice: 100, OriginalPrice: 200})
	mustCreate(t, cmd, CreateProductCommand{Name: "third", CurrentPrice: 150, OriginalPrice: 300})

	got, err := query.TrendingProducts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}

func TestTrendingProductsLimit(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		mustCreate(t, cmd, CreateProductCommand{Name: "p", CurrentPrice: 1, OriginalPrice: 2})
	}

	got, err := query.TrendingProducts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultTrendingLimit)
}

func TestGetProductWithHistoryRoundTrip(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	created := mustCreate(t, cmd, CreateProductCommand{
		Name:          "PlayStation 5",
		Description:   "Console",
		Category:      "Gaming",
		CurrentPrice:  499,
		OriginalPrice: 599,
		Store:         "Best Buy",
	})

	got, err := query.GetProductWithHistory(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, *created, got.Product)
	assert.Empty(t, got.PriceHistory)
}

func TestGetProductWithHistoryOrdering(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, cmd, CreateProductCommand{Name: "ps5", CurrentPrice: 499, OriginalPrice: 599})

	// append out of order, expect ascending dates back
	for _, daysAgo := range []int{1, 5, 3} {
		_, err := cmd.AppendPrice(ctx, AppendPriceCommand{
			ProductID: p.ID,
			Price:     500,
			Date:      timeDaysAgo(daysAgo),
		})
		require.NoError(t, err)
	}

	got, err := query.GetProductWithHistory(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.PriceHistory, 3)
	for i := 1; i < len(got.PriceHistory); i++ {
		assert.True(t, got.PriceHistory[i-1].Date.Before(got.PriceHistory[i].Date))
	}
}

func TestGetProductNotFound(t *testing.T) {
	_, query := newTestCatalog(t)

	_, err := query.GetProductWithHistory(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
