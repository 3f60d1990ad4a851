// Package memory 提供以内存 map 实现的仓储，进程启动时构建，进程退出即销毁
package memory

import (
	"context"
	"sync"

	"github.com/trendly/pricetrack/internal/catalog/domain"
)

// ProductRepository 商品内存仓储，保持插入顺序
type ProductRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Product
	order []string
}

// NewProductRepository 创建商品内存仓储实例
func NewProductRepository() *ProductRepository {
	return &ProductRepository{items: make(map[string]*domain.Product)}
}

// Save 插入商品
func (r *ProductRepository) Save(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	if _, exists := r.items[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.items[p.ID] = &cp
	return nil
}

// Update 覆盖已存在的商品
func (r *ProductRepository) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; !exists {
		return domain.ErrProductNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

// GetByID 根据 ID 获取商品
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

// List 按插入顺序返回全部商品
func (r *ProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}
