// Package memory 提供以内存 map 实现的关注列表仓储
package memory

import (
	"context"
	"sync"

	"github.com/trendly/pricetrack/internal/watchlist/domain"
)

// WatchlistRepository 关注列表内存仓储
type WatchlistRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Entry
	order []string
}

// NewWatchlistRepository 创建关注列表内存仓储实例
func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{items: make(map[string]*domain.Entry)}
}

// Save 插入关注记录
func (r *WatchlistRepository) Save(_ context.Context, e *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *e
	if _, exists := r.items[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	r.items[e.ID] = &cp
	return nil
}

// Update 覆盖已存在的关注记录
func (r *WatchlistRepository) Update(_ context.Context, e *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[e.ID]; !exists {
		return domain.ErrEntryNotFound
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

// FindByUser 返回用户的全部关注记录，按插入顺序
func (r *WatchlistRepository) FindByUser(_ context.Context, userID string) ([]*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Entry, 0)
	for _, id := range r.order {
		e := r.items[id]
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// FindByUserAndProduct 查找指定 (user, product) 的关注记录
func (r *WatchlistRepository) FindByUserAndProduct(_ context.Context, userID, productID string) (*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.UserID == userID && e.ProductID == productID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

// Delete 删除匹配的关注记录，存在并删除时返回 true
func (r *WatchlistRepository) Delete(_ context.Context, userID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.items {
		if e.UserID == userID && e.ProductID == productID {
			delete(r.items, id)
			for i, oid := range r.order {
				if oid == id {
					r.order = append(r.order[:i], r.order[i+1:]...)
					break
				}
			}
			return true, nil
		}
	}
	return false, nil
}

// ListAll 返回全部关注记录
func (r *WatchlistRepository) ListAll(_ context.Context) ([]*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Entry, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}
