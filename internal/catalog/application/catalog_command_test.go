package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendly/pricetrack/internal/catalog/domain"
)

func timeDaysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	cmd, _ := newTestCatalog(t)

	_, err := cmd.CreateProduct(context.Background(), CreateProductCommand{Name: "bad", CurrentPrice: -1})
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestUpdateProductMergesFields(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, cmd, CreateProductCommand{Name: "ps5", Description: "console", CurrentPrice: 499, OriginalPrice: 599})

	newName := "PlayStation 5 Slim"
	newPrice := 449.0
	updated, err := cmd.UpdateProduct(ctx, UpdateProductCommand{
		ProductID:    p.ID,
		Name:         &newName,
		CurrentPrice: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newPrice, updated.CurrentPrice)
	assert.Equal(t, "console", updated.Description)
	assert.False(t, updated.LastUpdated.Before(p.LastUpdated))

	stored, err := query.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, stored.Name)
}

func TestUpdateProductNotFound(t *testing.T) {
	cmd, _ := newTestCatalog(t)

	name := "ghost"
	_, err := cmd.UpdateProduct(context.Background(), UpdateProductCommand{ProductID: "missing", Name: &name})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRefreshPriceAppendsHistory(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, cmd, CreateProductCommand{Name: "ps5", CurrentPrice: 499, OriginalPrice: 599})

	updated, err := cmd.RefreshPrice(ctx, p.ID, 459)
	require.NoError(t, err)
	assert.Equal(t, 459.0, updated.CurrentPrice)

	got, err := query.GetProductWithHistory(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.PriceHistory, 1)
	assert.Equal(t, 459.0, got.PriceHistory[0].Price)
}

func TestAppendPriceUnknownProduct(t *testing.T) {
	cmd, _ := newTestCatalog(t)

	_, err := cmd.AppendPrice(context.Background(), AppendPriceCommand{ProductID: "missing", Price: 10})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSeedCatalog(t *testing.T) {
	cmd, query := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, cmd.Seed(ctx))

	products, err := query.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(sampleProducts))

	for _, p := range products {
		got, err := query.GetProductWithHistory(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, got.PriceHistory, seedHistoryDays+1)
		for _, h := range got.PriceHistory {
			assert.GreaterOrEqual(t, h.Price, 0.0)
		}
	}
}
