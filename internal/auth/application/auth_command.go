package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendly/pricetrack/internal/auth/domain"
	"github.com/trendly/pricetrack/pkg/auth"
)

// RegisterCommand 注册命令
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

// LoginCommand 登录命令
type LoginCommand struct {
	Email    string
	Password string
}

// AuthResult 注册/登录结果
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthCommandService 认证命令服务
type AuthCommandService struct {
	repo      domain.UserRepository
	sessions  domain.SessionRepository
	tokens    *auth.TokenManager
	publisher domain.EventPublisher
}

// NewAuthCommandService 创建认证命令服务实例
func NewAuthCommandService(
	repo domain.UserRepository,
	sessions domain.SessionRepository,
	tokens *auth.TokenManager,
	publisher domain.EventPublisher,
) *AuthCommandService {
	return &AuthCommandService{
		repo:      repo,
		sessions:  sessions,
		tokens:    tokens,
		publisher: publisher,
	}
}

// Register 处理用户注册，邮箱唯一，姓名缺省时取邮箱本地部分
func (s *AuthCommandService) Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	existing, err := s.repo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := cmd.Name
	if name == "" {
		name = strings.SplitN(cmd.Email, "@", 2)[0]
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        cmd.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.UserRegisteredEvent{
			UserID:    user.ID,
			Email:     user.Email,
			Timestamp: time.Now(),
		}
		_ = s.publisher.Publish(ctx, domain.UserRegisteredEventType, user.Email, event)
	}

	return s.openSession(ctx, user)
}

// Login 处理用户登录
func (s *AuthCommandService) Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if s.publisher != nil {
		event := domain.UserLoggedInEvent{
			UserID:    user.ID,
			Email:     user.Email,
			Timestamp: time.Now(),
		}
		_ = s.publisher.Publish(ctx, domain.UserLoggedInEventType, user.Email, event)
	}

	return s.openSession(ctx, user)
}

// Logout 处理登出，删除会话记录
func (s *AuthCommandService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthCommandService) openSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
