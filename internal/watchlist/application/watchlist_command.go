package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/trendly/pricetrack/internal/catalog/domain"
	"github.com/trendly/pricetrack/internal/watchlist/domain"
)

// AddItemCommand 关注商品命令
type AddItemCommand struct {
	UserID       string
	ProductID    string
	TargetPrice  float64
	AlertEnabled *bool
}

// RemoveItemCommand 取消关注命令
type RemoveItemCommand struct {
	UserID    string
	ProductID string
}

// UpdateItemCommand 更新关注记录命令，nil 字段表示不修改
type UpdateItemCommand struct {
	UserID       string
	ProductID    string
	TargetPrice  *float64
	AlertEnabled *bool
}

// ProductReader 商品读取接口，由 catalog 查询服务提供
type ProductReader interface {
	GetProduct(ctx context.Context, id string) (*catalogdomain.Product, error)
}

// WatchlistCommandService 关注列表命令服务
type WatchlistCommandService struct {
	repo      domain.Repository
	products  ProductReader
	publisher domain.EventPublisher
}

// NewWatchlistCommandService 创建关注列表命令服务实例
func NewWatchlistCommandService(
	repo domain.Repository,
	products ProductReader,
	publisher domain.EventPublisher,
) *WatchlistCommandService {
	return &WatchlistCommandService{
		repo:      repo,
		products:  products,
		publisher: publisher,
	}
}

// AddItem 处理关注商品，同一 (user, product) 重复关注返回 ErrDuplicateEntry
func (s *WatchlistCommandService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Entry, error) {
	if _, err := s.products.GetProduct(ctx, cmd.ProductID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndProduct(ctx, cmd.UserID, cmd.ProductID)
	if err != nil && err != domain.ErrEntryNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEntry
	}

	alertEnabled := true
	if cmd.AlertEnabled != nil {
		alertEnabled = *cmd.AlertEnabled
	}

	entry := &domain.Entry{
		ID:           uuid.New().String(),
		UserID:       cmd.UserID,
		ProductID:    cmd.ProductID,
		TargetPrice:  cmd.TargetPrice,
		AlertEnabled: alertEnabled,
		AddedAt:      time.Now(),
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.ItemAddedEvent{
			EntryID:     entry.ID,
			UserID:      entry.UserID,
			ProductID:   entry.ProductID,
			TargetPrice: entry.TargetPrice,
			Timestamp:   time.Now(),
		}
		_ = s.publisher.Publish(ctx, domain.ItemAddedEventType, entry.UserID, event)
	}

	return entry, nil
}

// RemoveItem 处理取消关注，记录存在并被删除时返回 true，幂等
func (s *WatchlistCommandService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) (bool, error) {
	removed, err := s.repo.Delete(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return false, err
	}

	if removed && s.publisher != nil {
		event := domain.ItemRemovedEvent{
			UserID:    cmd.UserID,
			ProductID: cmd.ProductID,
			Timestamp: time.Now(),
		}
		_ = s.publisher.Publish(ctx, domain.ItemRemovedEventType, cmd.UserID, event)
	}

	return removed, nil
}

// UpdateItem 处理更新关注记录，记录不存在时返回 ErrEntryNotFound 且不做任何修改
func (s *WatchlistCommandService) UpdateItem(ctx context.Context, cmd UpdateItemCommand) (*domain.Entry, error) {
	entry, err := s.repo.FindByUserAndProduct(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if cmd.TargetPrice != nil {
		entry.TargetPrice = *cmd.TargetPrice
	}
	if cmd.AlertEnabled != nil {
		entry.AlertEnabled = *cmd.AlertEnabled
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// HandlePriceRefresh 价格刷新后扫描关注记录，对达到目标价的条目发布提醒事件
func (s *WatchlistCommandService) HandlePriceRefresh(ctx context.Context, productID string, newPrice float64) error {
	if s.publisher == nil {
		return nil
	}

	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.ProductID != productID || !e.AlertTriggered(newPrice) {
			continue
		}
		event := domain.PriceAlertEvent{
			UserID:       e.UserID,
			ProductID:    e.ProductID,
			TargetPrice:  e.TargetPrice,
			CurrentPrice: newPrice,
			Timestamp:    time.Now(),
		}
		_ = s.publisher.Publish(ctx, domain.PriceAlertEventType, e.UserID, event)
	}
	return nil
}
