package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDependencyFailure 外部商品源不可达或返回异常
var ErrDependencyFailure = errors.New("product source unavailable")

// ExternalProduct 外部商品源返回的候选商品，价格字段缺失时为 nil
type ExternalProduct struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Image         string    `json:"image,omitempty"`
	CurrentPrice  *float64  `json:"currentPrice"`
	OriginalPrice *float64  `json:"originalPrice"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	Store         string    `json:"store"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// Searcher 外部商品源查询接口，单次尽力而为，不做自动重试
type Searcher interface {
	Search(ctx context.Context, query string) ([]*ExternalProduct, error)
}
