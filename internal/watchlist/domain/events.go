package domain

import (
	"context"
	"time"
)

// 事件主题
const (
	ItemAddedEventType   = "watchlist.item.added"
	ItemRemovedEventType = "watchlist.item.removed"
	PriceAlertEventType  = "watchlist.price.alert"
)

// ItemAddedEvent 关注商品事件
type ItemAddedEvent struct {
	EntryID     string    `json:"entry_id"`
	UserID      string    `json:"user_id"`
	ProductID   string    `json:"product_id"`
	TargetPrice float64   `json:"target_price"`
	Timestamp   time.Time `json:"timestamp"`
}

// ItemRemovedEvent 取消关注事件
type ItemRemovedEvent struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceAlertEvent 价格达到目标价事件
type PriceAlertEvent struct {
	UserID       string    `json:"user_id"`
	ProductID    string    `json:"product_id"`
	TargetPrice  float64   `json:"target_price"`
	CurrentPrice float64   `json:"current_price"`
	Timestamp    time.Time `json:"timestamp"`
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
