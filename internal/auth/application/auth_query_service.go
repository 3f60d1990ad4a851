package application

import (
	"context"

	"github.com/trendly/pricetrack/internal/auth/domain"
)

// AuthQueryService 认证查询服务
type AuthQueryService struct {
	repo     domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthQueryService 创建认证查询服务实例
func NewAuthQueryService(repo domain.UserRepository, sessions domain.SessionRepository) *AuthQueryService {
	return &AuthQueryService{repo: repo, sessions: sessions}
}

// GetUser 根据 ID 获取用户信息
func (s *AuthQueryService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetUserByEmail 根据邮箱获取用户信息，未找到时返回 (nil, nil)
func (s *AuthQueryService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetSession 根据 token 获取会话
func (s *AuthQueryService) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	return s.sessions.GetByToken(ctx, token)
}
