// Package serpapi 实现基于 SerpAPI 的外部商品查询
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/trendly/pricetrack/internal/marketsearch/domain"
	"github.com/trendly/pricetrack/pkg/logger"
)

// Config SerpAPI 客户端配置
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client SerpAPI 查询客户端
type Client struct {
	http   *resty.Client
	apiKey string
}

// New 创建 SerpAPI 查询客户端
func New(cfg Config) *Client {
	http := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout)

	return &Client{http: http, apiKey: cfg.APIKey}
}

// searchResponse SerpAPI 返回体，不同 engine 的结果数组字段不同
type searchResponse struct {
	OrganicResults  []item `json:"organic_results"`
	SearchResults   []item `json:"search_results"`
	ShoppingResults []item `json:"shopping_results"`
}

// item 外部结果条目，各字段在不同 engine 下可能出现在不同位置
type item struct {
	Title          string          `json:"title"`
	Name           string          `json:"name"`
	Thumbnail      string          `json:"thumbnail"`
	Image          string          `json:"image"`
	InlineImages   []string        `json:"inline_images"`
	Snippet        string          `json:"snippet"`
	Description    string          `json:"description"`
	Link           string          `json:"link"`
	URL            string          `json:"url"`
	Price          json.RawMessage `json:"price"`
	ExtractedPrice *float64        `json:"extracted_price"`
}

// Search 查询 Amazon 商品，单次尽力而为
func (c *Client) Search(ctx context.Context, query string) ([]*domain.ExternalProduct, error) {
	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"engine":  "amazon",
			"k":       query,
			"api_key": c.apiKey,
		}).
		SetResult(&body).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDependencyFailure, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: unexpected status %s", domain.ErrDependencyFailure, resp.Status())
	}

	items := body.OrganicResults
	if len(items) == 0 {
		items = body.SearchResults
	}
	if len(items) == 0 {
		items = body.ShoppingResults
	}

	products := make([]*domain.ExternalProduct, 0, len(items))
	for i, it := range items {
		price := it.price()
		products = append(products, &domain.ExternalProduct{
			ID:            fmt.Sprintf("amazon_%d", i),
			Title:         it.title(),
			Image:         it.image(),
			CurrentPrice:  price,
			OriginalPrice: price,
			URL:           it.link(),
			Description:   it.description(),
			Store:         "Amazon",
			LastUpdated:   time.Now(),
		})
	}

	logger.Debug(ctx, "External search completed", "query", query, "results", len(products))
	return products, nil
}

func (it *item) title() string {
	if it.Title != "" {
		return it.Title
	}
	return it.Name
}

func (it *item) image() string {
	if it.Thumbnail != "" {
		return it.Thumbnail
	}
	if it.Image != "" {
		return it.Image
	}
	if len(it.InlineImages) > 0 {
		return it.InlineImages[0]
	}
	return ""
}

func (it *item) link() string {
	if it.Link != "" {
		return it.Link
	}
	return it.URL
}

func (it *item) description() string {
	if it.Snippet != "" {
		return it.Snippet
	}
	return it.Description
}

var nonDigits = regexp.MustCompile(`[^\d]`)

// price 兼容字符串与数值两种价格表示，无法解析时返回 nil
func (it *item) price() *float64 {
	if it.ExtractedPrice != nil {
		return it.ExtractedPrice
	}
	if len(it.Price) == 0 {
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(it.Price, &asNumber); err == nil {
		return &asNumber
	}

	var asString string
	if err := json.Unmarshal(it.Price, &asString); err != nil {
		return nil
	}
	digits := nonDigits.ReplaceAllString(asString, "")
	if digits == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
