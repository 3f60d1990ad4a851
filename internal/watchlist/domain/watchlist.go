package domain

import "time"

// Entry 用户对某个商品的关注记录，同一 (userID, productID) 至多一条
type Entry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ProductID    string    `json:"productId"`
	TargetPrice  float64   `json:"targetPrice"`
	AlertEnabled bool      `json:"alertEnabled"`
	AddedAt      time.Time `json:"addedAt"`
}

// AlertTriggered 价格达到目标价且开启提醒时为真
func (e *Entry) AlertTriggered(currentPrice float64) bool {
	return e.AlertEnabled && e.TargetPrice > 0 && currentPrice <= e.TargetPrice
}
