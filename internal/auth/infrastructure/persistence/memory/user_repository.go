// Package memory 提供以内存 map 实现的用户与会话仓储
package memory

import (
	"context"
	"sync"

	"github.com/trendly/pricetrack/internal/auth/domain"
)

// UserRepository 用户内存仓储
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.User
}

// NewUserRepository 创建用户内存仓储实例
func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]*domain.User)}
}

// Save 插入用户
func (r *UserRepository) Save(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *u
	r.items[u.ID] = &cp
	return nil
}

// GetByID 根据 ID 获取用户
func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// GetByEmail 根据邮箱获取用户，未找到时返回 (nil, nil)
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
