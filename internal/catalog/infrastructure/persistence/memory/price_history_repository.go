package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/trendly/pricetrack/internal/catalog/domain"
)

// PriceHistoryRepository 价格历史内存仓储，按商品分桶存放
type PriceHistoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]*domain.PriceHistory
}

// NewPriceHistoryRepository 创建价格历史内存仓储实例
func NewPriceHistoryRepository() *PriceHistoryRepository {
	return &PriceHistoryRepository{entries: make(map[string][]*domain.PriceHistory)}
}

// Append 追加一条价格历史
func (r *PriceHistoryRepository) Append(_ context.Context, h *domain.PriceHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *h
	r.entries[h.ProductID] = append(r.entries[h.ProductID], &cp)
	return nil
}

// ListByProduct 按日期升序返回指定商品的价格历史
func (r *PriceHistoryRepository) ListByProduct(_ context.Context, productID string) ([]*domain.PriceHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket := r.entries[productID]
	out := make([]*domain.PriceHistory, 0, len(bucket))
	for _, h := range bucket {
		cp := *h
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
