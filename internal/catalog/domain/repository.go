package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// ErrNegativePrice 商品价格不允许为负
var ErrNegativePrice = errors.New("price must not be negative")

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Save(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	// List 按插入顺序返回全部商品
	List(ctx context.Context) ([]*Product, error)
}

// PriceHistoryRepository 价格历史仓储接口
type PriceHistoryRepository interface {
	Append(ctx context.Context, h *PriceHistory) error
	// ListByProduct 按日期升序返回指定商品的价格历史
	ListByProduct(ctx context.Context, productID string) ([]*PriceHistory, error)
}
