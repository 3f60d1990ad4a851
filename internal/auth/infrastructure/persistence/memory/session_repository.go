package memory

import (
	"context"
	"sync"

	"github.com/trendly/pricetrack/internal/auth/domain"
)

// SessionRepository 会话内存仓储，未配置 Redis 时使用
type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Session
}

// NewSessionRepository 创建会话内存仓储实例
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{items: make(map[string]*domain.Session)}
}

// Save 保存会话
func (r *SessionRepository) Save(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	r.items[s.Token] = &cp
	return nil
}

// GetByToken 根据 token 获取会话，未找到时返回 (nil, nil)
func (r *SessionRepository) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[token]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Delete 删除会话，幂等
func (r *SessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, token)
	return nil
}
