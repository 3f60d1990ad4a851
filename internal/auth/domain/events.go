package domain

import (
	"context"
	"time"
)

// 事件主题
const (
	UserRegisteredEventType = "auth.user.registered"
	UserLoggedInEventType   = "auth.user.loggedin"
)

// UserRegisteredEvent 用户注册事件
type UserRegisteredEvent struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// UserLoggedInEvent 用户登录事件
type UserLoggedInEvent struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
