package refresher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/trendly/pricetrack/internal/catalog/application"
	catalogmemory "github.com/trendly/pricetrack/internal/catalog/infrastructure/persistence/memory"
	watchlistapp "github.com/trendly/pricetrack/internal/watchlist/application"
	watchlistmemory "github.com/trendly/pricetrack/internal/watchlist/infrastructure/persistence/memory"
)

func newTestRefresher(t *testing.T, interval time.Duration) (*Refresher, *catalogapp.CatalogService) {
	t.Helper()
	catalog := catalogapp.NewCatalogService(
		catalogmemory.NewProductRepository(),
		catalogmemory.NewPriceHistoryRepository(),
		nil,
	)
	watchlist := watchlistapp.NewWatchlistCommandService(
		watchlistmemory.NewWatchlistRepository(),
		catalog,
		nil,
	)
	return New(catalog, watchlist, interval), catalog
}

func TestNextPriceStaysWithinWalk(t *testing.T) {
	for i := 0; i < 1000; i++ {
		next := nextPrice(100)
		assert.GreaterOrEqual(t, next, 95.0)
		assert.LessOrEqual(t, next, 105.0)
	}
}

func TestNextPriceNeverNonPositive(t *testing.T) {
	for i := 0; i < 1000; i++ {
		assert.Greater(t, nextPrice(0.01), 0.0)
	}
}

func TestNextPriceRoundsToCents(t *testing.T) {
	for i := 0; i < 100; i++ {
		next := nextPrice(33.33)
		cents := next * 100
		assert.InDelta(t, cents, float64(int64(cents+0.5)), 1e-6)
	}
}

func TestRunDisabledWhenIntervalZero(t *testing.T) {
	r, _ := newTestRefresher(t, 0)

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return for a disabled refresher")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	r, _ := newTestRefresher(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestRefreshAllAppendsHistory(t *testing.T) {
	r, catalog := newTestRefresher(t, time.Hour)
	ctx := context.Background()

	product, err := catalog.CreateProduct(ctx, catalogapp.CreateProductCommand{
		Name:          "Coffee Maker",
		CurrentPrice:  120,
		OriginalPrice: 150,
	})
	require.NoError(t, err)

	r.refreshAll(ctx)

	updated, err := catalog.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 120, updated.CurrentPrice, 120*0.05+0.01)
	assert.Greater(t, updated.CurrentPrice, 0.0)

	detail, err := catalog.Queries().GetProductWithHistory(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, detail.PriceHistory, 1)
	assert.Equal(t, updated.CurrentPrice, detail.PriceHistory[0].Price)
}
