// Package refresher 周期性刷新商品价格并触发价格提醒
package refresher

import (
	"context"
	"math"
	"math/rand"
	"time"

	catalogapp "github.com/trendly/pricetrack/internal/catalog/application"
	watchlistapp "github.com/trendly/pricetrack/internal/watchlist/application"
	"github.com/trendly/pricetrack/pkg/logger"
)

// Refresher 价格刷新器
type Refresher struct {
	catalog   *catalogapp.CatalogService
	watchlist *watchlistapp.WatchlistCommandService
	interval  time.Duration
}

// New 创建价格刷新器实例
func New(catalog *catalogapp.CatalogService, watchlist *watchlistapp.WatchlistCommandService, interval time.Duration) *Refresher {
	return &Refresher{catalog: catalog, watchlist: watchlist, interval: interval}
}

// Run 启动刷新循环并阻塞，直到 ctx 取消。interval <= 0 时直接返回
func (r *Refresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		logger.Info(ctx, "Price refresher disabled")
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logger.Info(ctx, "Price refresher started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Price refresher stopping")
			return nil
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *Refresher) refreshAll(ctx context.Context) {
	products, err := r.catalog.ListProducts(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to list products for refresh", "error", err)
		return
	}

	for _, p := range products {
		select {
		case <-ctx.Done():
			return
		default:
		}

		newPrice := nextPrice(p.CurrentPrice)
		if _, err := r.catalog.RefreshPrice(ctx, p.ID, newPrice); err != nil {
			logger.Error(ctx, "Failed to refresh price", "product_id", p.ID, "error", err)
			continue
		}

		if err := r.watchlist.HandlePriceRefresh(ctx, p.ID, newPrice); err != nil {
			logger.Error(ctx, "Failed to dispatch price alerts", "product_id", p.ID, "error", err)
		}

		logger.Debug(ctx, "Price refreshed", "product_id", p.ID, "price", newPrice)
	}
}

// nextPrice 在当前价基础上做 ±5% 的随机游走，价格永不跌破零
func nextPrice(current float64) float64 {
	delta := rand.Float64()*0.1 - 0.05
	next := math.Round(current*(1+delta)*100) / 100
	if next <= 0 {
		return current
	}
	return next
}
