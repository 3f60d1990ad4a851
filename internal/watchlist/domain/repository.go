package domain

import (
	"context"
	"errors"
)

// ErrEntryNotFound 关注记录不存在
var ErrEntryNotFound = errors.New("watchlist entry not found")

// ErrDuplicateEntry 同一用户重复关注同一商品
var ErrDuplicateEntry = errors.New("product already in watchlist")

// Repository 关注列表仓储接口
type Repository interface {
	Save(ctx context.Context, e *Entry) error
	Update(ctx context.Context, e *Entry) error
	FindByUser(ctx context.Context, userID string) ([]*Entry, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*Entry, error)
	// Delete 删除匹配的记录，存在并删除时返回 true，幂等
	Delete(ctx context.Context, userID, productID string) (bool, error)
	// ListAll 返回全部关注记录，供价格提醒扫描使用
	ListAll(ctx context.Context) ([]*Entry, error)
}
