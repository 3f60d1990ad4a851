package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trendly/pricetrack/internal/catalog/domain"
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	Name          string
	Description   string
	Image         string
	Category      string
	CurrentPrice  float64
	OriginalPrice float64
	URL           string
	Store         string
}

// UpdateProductCommand 更新商品命令，nil 字段表示不修改
type UpdateProductCommand struct {
	ProductID     string
	Name          *string
	Description   *string
	Image         *string
	Category      *string
	CurrentPrice  *float64
	OriginalPrice *float64
	URL           *string
	Store         *string
}

// AppendPriceCommand 追加价格历史命令，Date 为零值时取当前时间
type AppendPriceCommand struct {
	ProductID string
	Price     float64
	Date      time.Time
}

// CatalogCommandService 商品目录命令服务
type CatalogCommandService struct {
	products  domain.ProductRepository
	history   domain.PriceHistoryRepository
	publisher domain.EventPublisher
}

// NewCatalogCommandService 创建商品目录命令服务实例
func NewCatalogCommandService(
	products domain.ProductRepository,
	history domain.PriceHistoryRepository,
	publisher domain.EventPublisher,
) *CatalogCommandService {
	return &CatalogCommandService{
		products:  products,
		history:   history,
		publisher: publisher,
	}
}

// CreateProduct 处理创建商品
func (s *CatalogCommandService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.CurrentPrice < 0 {
		return nil, domain.ErrNegativePrice
	}

	p := &domain.Product{
		ID:            uuid.New().String(),
		Name:          cmd.Name,
		Description:   cmd.Description,
		Image:         cmd.Image,
		Category:      cmd.Category,
		CurrentPrice:  cmd.CurrentPrice,
		OriginalPrice: cmd.OriginalPrice,
		URL:           cmd.URL,
		Store:         cmd.Store,
		LastUpdated:   time.Now(),
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.ProductCreatedEvent{
			ProductID: p.ID,
			Name:      p.Name,
			Store:     p.Store,
			Category:  p.Category,
			Timestamp: time.Now(),
		}
		_ = s.publisher.Publish(ctx, domain.ProductCreatedEventType, p.ID, event)
	}

	return p, nil
}

// UpdateProduct 处理更新商品，ID 与时间戳不可修改
func (s *CatalogCommandService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		p.Name = *cmd.Name
	}
	if cmd.Description != nil {
		p.Description = *cmd.Description
	}
	if cmd.Image != nil {
		p.Image = *cmd.Image
	}
	if cmd.Category != nil {
		p.Category = *cmd.Category
	}
	if cmd.CurrentPrice != nil {
		if *cmd.CurrentPrice < 0 {
			return nil, domain.ErrNegativePrice
		}
		p.CurrentPrice = *cmd.CurrentPrice
	}
	if cmd.OriginalPrice != nil {
		p.OriginalPrice = *cmd.OriginalPrice
	}
	if cmd.URL != nil {
		p.URL = *cmd.URL
	}
	if cmd.Store != nil {
		p.Store = *cmd.Store
	}
	p.LastUpdated = time.Now()

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AppendPrice 处理追加价格历史
func (s *CatalogCommandService) AppendPrice(ctx context.Context, cmd AppendPriceCommand) (*domain.PriceHistory, error) {
	if _, err := s.products.GetByID(ctx, cmd.ProductID); err != nil {
		return nil, err
	}

	date := cmd.Date
	if date.IsZero() {
		date = time.Now()
	}

	h := &domain.PriceHistory{
		ID:        uuid.New().String(),
		ProductID: cmd.ProductID,
		Price:     cmd.Price,
		Date:      date,
	}
	if err := s.history.Append(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// RefreshPrice 处理价格刷新：更新现价、刷新时间并追加一条历史记录
func (s *CatalogCommandService) RefreshPrice(ctx context.Context, productID string, newPrice float64) (*domain.Product, error) {
	if newPrice < 0 {
		return nil, domain.ErrNegativePrice
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	oldPrice := p.CurrentPrice
	p.CurrentPrice = newPrice
	p.LastUpdated = time.Now()
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	if _, err := s.AppendPrice(ctx, AppendPriceCommand{ProductID: productID, Price: newPrice}); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.PriceRefreshedEvent{
			ProductID: p.ID,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
			Timestamp: time.Now(),
		}
		_ = s.publisher.Publish(ctx, domain.PriceRefreshedEventType, p.ID, event)
	}

	return p, nil
}
