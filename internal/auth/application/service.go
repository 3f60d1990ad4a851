package application

import (
	"context"

	"github.com/trendly/pricetrack/internal/auth/domain"
	"github.com/trendly/pricetrack/pkg/auth"
)

// AuthService 认证服务门面，整合命令服务和查询服务
type AuthService struct {
	commandService *AuthCommandService
	queryService   *AuthQueryService
}

// NewAuthService 创建认证服务门面实例
func NewAuthService(
	repo domain.UserRepository,
	sessions domain.SessionRepository,
	tokens *auth.TokenManager,
	publisher domain.EventPublisher,
) *AuthService {
	return &AuthService{
		commandService: NewAuthCommandService(repo, sessions, tokens, publisher),
		queryService:   NewAuthQueryService(repo, sessions),
	}
}

// Commands 返回命令服务
func (s *AuthService) Commands() *AuthCommandService {
	return s.commandService
}

// Queries 返回查询服务
func (s *AuthService) Queries() *AuthQueryService {
	return s.queryService
}

// Register 处理用户注册
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	return s.commandService.Register(ctx, RegisterCommand{Name: name, Email: email, Password: password})
}

// Login 处理用户登录
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return s.commandService.Login(ctx, LoginCommand{Email: email, Password: password})
}

// GetUser 根据 ID 获取用户信息
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.queryService.GetUser(ctx, id)
}
