package application

import (
	"context"

	"github.com/trendly/pricetrack/internal/watchlist/domain"
)

// WatchlistService 关注列表服务门面，整合命令服务和查询服务
type WatchlistService struct {
	commandService *WatchlistCommandService
	queryService   *WatchlistQueryService
}

// NewWatchlistService 创建关注列表服务门面实例
func NewWatchlistService(
	repo domain.Repository,
	products ProductReader,
	publisher domain.EventPublisher,
) *WatchlistService {
	return &WatchlistService{
		commandService: NewWatchlistCommandService(repo, products, publisher),
		queryService:   NewWatchlistQueryService(repo, products),
	}
}

// Commands 返回命令服务
func (s *WatchlistService) Commands() *WatchlistCommandService {
	return s.commandService
}

// Queries 返回查询服务
func (s *WatchlistService) Queries() *WatchlistQueryService {
	return s.queryService
}

// AddItem 处理关注商品
func (s *WatchlistService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Entry, error) {
	return s.commandService.AddItem(ctx, cmd)
}

// RemoveItem 处理取消关注
func (s *WatchlistService) RemoveItem(ctx context.Context, userID, productID string) (bool, error) {
	return s.commandService.RemoveItem(ctx, RemoveItemCommand{UserID: userID, ProductID: productID})
}

// ListForUser 返回用户关注列表
func (s *WatchlistService) ListForUser(ctx context.Context, userID string) ([]*Item, error) {
	return s.queryService.ListForUser(ctx, userID)
}

// Stats 计算用户看板统计
func (s *WatchlistService) Stats(ctx context.Context, userID string) (*DashboardStats, error) {
	return s.queryService.Stats(ctx, userID)
}
