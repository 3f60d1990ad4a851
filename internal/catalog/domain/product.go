package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品实体
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Category      string    `json:"category"`
	CurrentPrice  float64   `json:"currentPrice"`
	OriginalPrice float64   `json:"originalPrice"`
	URL           string    `json:"url"`
	Store         string    `json:"store"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// DiscountPercent 折扣百分比，原价非正时视为无折扣
func (p *Product) DiscountPercent() float64 {
	if p.OriginalPrice <= 0 {
		return 0
	}
	orig := decimal.NewFromFloat(p.OriginalPrice)
	cur := decimal.NewFromFloat(p.CurrentPrice)
	pct, _ := orig.Sub(cur).Div(orig).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// OnSale 当前价低于原价时为真
func (p *Product) OnSale() bool {
	return p.CurrentPrice < p.OriginalPrice
}
