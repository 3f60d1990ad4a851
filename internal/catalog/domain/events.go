package domain

import (
	"context"
	"time"
)

// 事件主题
const (
	ProductCreatedEventType = "catalog.product.created"
	PriceRefreshedEventType = "catalog.price.refreshed"
)

// ProductCreatedEvent 商品创建事件
type ProductCreatedEvent struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Store     string    `json:"store"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceRefreshedEvent 价格刷新事件
type PriceRefreshedEvent struct {
	ProductID string    `json:"product_id"`
	OldPrice  float64   `json:"old_price"`
	NewPrice  float64   `json:"new_price"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
