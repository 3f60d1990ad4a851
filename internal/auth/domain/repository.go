package domain

import (
	"context"
	"errors"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken 邮箱已被注册
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials 邮箱或密码错误
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository 用户仓储接口
type UserRepository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail 未找到时返回 (nil, nil)，由调用方决定语义
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// SessionRepository 会话仓储接口
type SessionRepository interface {
	Save(ctx context.Context, s *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
