package application

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/trendly/pricetrack/internal/catalog/domain"
	"github.com/trendly/pricetrack/internal/watchlist/domain"
)

// Item 关注记录与商品快照的读模型，读取时拼装，不落库
type Item struct {
	domain.Entry
	Product catalogdomain.Product `json:"product"`
}

// DashboardStats 用户看板统计
type DashboardStats struct {
	TotalSaved   int `json:"totalSaved"`
	ItemsWatched int `json:"itemsWatched"`
	PriceAlerts  int `json:"priceAlerts"`
	DealsFound   int `json:"dealsFound"`
}

// WatchlistQueryService 关注列表查询服务
type WatchlistQueryService struct {
	repo     domain.Repository
	products ProductReader
}

// NewWatchlistQueryService 创建关注列表查询服务实例
func NewWatchlistQueryService(repo domain.Repository, products ProductReader) *WatchlistQueryService {
	return &WatchlistQueryService{repo: repo, products: products}
}

// ListForUser 返回用户关注列表，商品已被删除的条目静默丢弃，按加入时间降序
func (s *WatchlistQueryService) ListForUser(ctx context.Context, userID string) ([]*Item, error) {
	entries, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(entries))
	for _, e := range entries {
		p, err := s.products.GetProduct(ctx, e.ProductID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, &Item{Entry: *e, Product: *p})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AddedAt.After(items[j].AddedAt)
	})
	return items, nil
}

// IsWatched 判断用户是否已关注商品
func (s *WatchlistQueryService) IsWatched(ctx context.Context, userID, productID string) (bool, error) {
	_, err := s.repo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Stats 计算用户看板统计。totalSaved 不对单项负差价做截断，价格上涨会拉低总额
func (s *WatchlistQueryService) Stats(ctx context.Context, userID string) (*DashboardStats, error) {
	items, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{ItemsWatched: len(items)}
	saved := decimal.Zero
	for _, item := range items {
		orig := decimal.NewFromFloat(item.Product.OriginalPrice)
		cur := decimal.NewFromFloat(item.Product.CurrentPrice)
		saved = saved.Add(orig.Sub(cur))

		if item.AlertEnabled {
			stats.PriceAlerts++
		}
		if item.Product.OnSale() {
			stats.DealsFound++
		}
	}
	stats.TotalSaved = int(saved.Round(0).IntPart())

	return stats, nil
}
