package application

import (
	"context"
	"sort"
	"strings"

	"github.com/trendly/pricetrack/internal/catalog/domain"
)

// AllCategories 类目筛选的哨兵值，表示不过滤
const AllCategories = "All Categories"

// DefaultTrendingLimit 热门商品默认条数
const DefaultTrendingLimit = 6

// ProductWithHistory 商品及其价格历史读模型
type ProductWithHistory struct {
	domain.Product
	PriceHistory []*domain.PriceHistory `json:"priceHistory"`
}

// CatalogQueryService 商品目录查询服务
type CatalogQueryService struct {
	products domain.ProductRepository
	history  domain.PriceHistoryRepository
}

// NewCatalogQueryService 创建商品目录查询服务实例
func NewCatalogQueryService(
	products domain.ProductRepository,
	history domain.PriceHistoryRepository,
) *CatalogQueryService {
	return &CatalogQueryService{products: products, history: history}
}

// ListProducts 按插入顺序返回全部商品
func (s *CatalogQueryService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

// GetProduct 根据 ID 获取商品
func (s *CatalogQueryService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// GetProductWithHistory 获取商品及其按日期升序排列的价格历史
func (s *CatalogQueryService) GetProductWithHistory(ctx context.Context, id string) (*ProductWithHistory, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.history.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProductWithHistory{Product: *p, PriceHistory: history}, nil
}

// SearchProducts 大小写不敏感的名称/描述子串匹配，类目精确匹配（哨兵值除外），保持插入顺序
func (s *CatalogQueryService) SearchProducts(ctx context.Context, query, category string) ([]*domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]*domain.Product, 0)
	for _, p := range all {
		matchesQuery := strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
		matchesCategory := category == "" || category == AllCategories || p.Category == category
		if matchesQuery && matchesCategory {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// TrendingProducts 按折扣百分比降序返回至多 limit 个商品，相同折扣保持原有相对顺序
func (s *CatalogQueryService) TrendingProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]*domain.Product, len(all))
	copy(ranked, all)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DiscountPercent() > ranked[j].DiscountPercent()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
