package application

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// sampleProducts 开发环境的示例商品目录
var sampleProducts = []CreateProductCommand{
	{
		Name:          "Premium Wireless Headphones",
		Description:   "High-quality audio with noise cancellation",
		Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:      "Electronics",
		CurrentPrice:  199,
		OriginalPrice: 299,
		URL:           "https://example.com/headphones",
		Store:         "Amazon",
	},
	{
		Name:          "MacBook Pro 14\"",
		Description:   "M2 chip with 16GB RAM and 512GB SSD",
		Image:         "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:      "Electronics",
		CurrentPrice:  1899,
		OriginalPrice: 1999,
		URL:           "https://example.com/macbook",
		Store:         "Apple",
	},
	{
		Name:          "iPhone 15 Pro",
		Description:   "256GB, Titanium, Pro camera system",
		Image:         "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:      "Electronics",
		CurrentPrice:  1099,
		OriginalPrice: 1199,
		URL:           "https://example.com/iphone",
		Store:         "Apple",
	},
	{
		Name:          "PlayStation 5",
		Description:   "Console with Ultra HD Blu-ray disc drive",
		Image:         "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:      "Gaming",
		CurrentPrice:  499,
		OriginalPrice: 599,
		URL:           "https://example.com/ps5",
		Store:         "Best Buy",
	},
	{
		Name:          "Nike Air Max 270",
		Description:   "Comfortable running shoes with air cushioning",
		Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:      "Fashion",
		CurrentPrice:  129,
		OriginalPrice: 150,
		URL:           "https://example.com/nike-shoes",
		Store:         "Nike",
	},
	{
		Name:          "Instant Pot Duo 7-in-1",
		Description:   "Electric pressure cooker with multiple functions",
		Image:         "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		Category:      "Home & Garden",
		CurrentPrice:  79,
		OriginalPrice: 99,
		URL:           "https://example.com/instant-pot",
		Store:         "Amazon",
	},
}

// seedHistoryDays 为每个示例商品生成的历史天数
const seedHistoryDays = 30

// Seed 写入示例商品并为每个商品生成近 30 天的模拟价格历史
func (s *CatalogCommandService) Seed(ctx context.Context) error {
	for _, cmd := range sampleProducts {
		p, err := s.CreateProduct(ctx, cmd)
		if err != nil {
			return err
		}

		basePrice := p.OriginalPrice
		for i := seedHistoryDays; i >= 0; i-- {
			date := time.Now().AddDate(0, 0, -i)

			// 10%~30% 的随机波动，越接近当前日期价格越低
			variation := 0.1 + rand.Float64()*0.2
			trendFactor := float64(i) / float64(seedHistoryDays)
			price := math.Round(basePrice * (1 - variation*trendFactor))

			if _, err := s.AppendPrice(ctx, AppendPriceCommand{
				ProductID: p.ID,
				Price:     price,
				Date:      date,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
