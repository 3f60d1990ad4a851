package domain

import "time"

// PriceHistory 商品价格历史记录，仅追加，归属于单个商品
type PriceHistory struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
}
