package application

import (
	"context"

	"github.com/trendly/pricetrack/internal/catalog/domain"
)

// CatalogService 商品目录服务门面，整合命令服务和查询服务
type CatalogService struct {
	commandService *CatalogCommandService
	queryService   *CatalogQueryService
}

// NewCatalogService 创建商品目录服务门面实例
func NewCatalogService(
	products domain.ProductRepository,
	history domain.PriceHistoryRepository,
	publisher domain.EventPublisher,
) *CatalogService {
	return &CatalogService{
		commandService: NewCatalogCommandService(products, history, publisher),
		queryService:   NewCatalogQueryService(products, history),
	}
}

// Commands 返回命令服务
func (s *CatalogService) Commands() *CatalogCommandService {
	return s.commandService
}

// Queries 返回查询服务
func (s *CatalogService) Queries() *CatalogQueryService {
	return s.queryService
}

// CreateProduct 处理创建商品
func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	return s.commandService.CreateProduct(ctx, cmd)
}

// RefreshPrice 处理价格刷新
func (s *CatalogService) RefreshPrice(ctx context.Context, productID string, newPrice float64) (*domain.Product, error) {
	return s.commandService.RefreshPrice(ctx, productID, newPrice)
}

// ListProducts 返回全部商品
func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.queryService.ListProducts(ctx)
}

// GetProduct 根据 ID 获取商品
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.queryService.GetProduct(ctx, id)
}
