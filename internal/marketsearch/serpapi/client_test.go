package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendly/pricetrack/internal/marketsearch/domain"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New(Config{Endpoint: server.URL, APIKey: "test-key", Timeout: 2 * time.Second})
	return client, server
}

func TestSearchParsesOrganicResults(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "amazon", r.URL.Query().Get("engine"))
		assert.Equal(t, "headphones", r.URL.Query().Get("k"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"organic_results": [
				{
					"title": "Wireless Headphones",
					"thumbnail": "https://img.example.com/1.jpg",
					"snippet": "Noise cancelling",
					"link": "https://amazon.com/dp/1",
					"extracted_price": 89.99
				},
				{
					"name": "Earbuds",
					"image": "https://img.example.com/2.jpg",
					"description": "In-ear",
					"url": "https://amazon.com/dp/2",
					"price": "$1,299"
				}
			]
		}`))
	})
	defer server.Close()

	products, err := client.Search(context.Background(), "headphones")
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "amazon_0", first.ID)
	assert.Equal(t, "Wireless Headphones", first.Title)
	assert.Equal(t, "https://img.example.com/1.jpg", first.Image)
	assert.Equal(t, "Noise cancelling", first.Description)
	assert.Equal(t, "https://amazon.com/dp/1", first.URL)
	assert.Equal(t, "Amazon", first.Store)
	require.NotNil(t, first.CurrentPrice)
	assert.Equal(t, 89.99, *first.CurrentPrice)

	second := products[1]
	assert.Equal(t, "amazon_1", second.ID)
	assert.Equal(t, "Earbuds", second.Title)
	assert.Equal(t, "https://img.example.com/2.jpg", second.Image)
	assert.Equal(t, "In-ear", second.Description)
	assert.Equal(t, "https://amazon.com/dp/2", second.URL)
	require.NotNil(t, second.CurrentPrice)
	assert.Equal(t, float64(1299), *second.CurrentPrice)
}

func TestSearchFallsBackToShoppingResults(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"shopping_results": [
				{"title": "Blender", "price": 49.5, "link": "https://amazon.com/dp/3"}
			]
		}`))
	})
	defer server.Close()

	products, err := client.Search(context.Background(), "blender")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].CurrentPrice)
	assert.Equal(t, 49.5, *products[0].CurrentPrice)
}

func TestSearchUnparseablePrice(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"organic_results": [
				{"title": "Mystery Item", "price": "See options"}
			]
		}`))
	})
	defer server.Close()

	products, err := client.Search(context.Background(), "mystery")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].CurrentPrice)
	assert.Nil(t, products[0].OriginalPrice)
}

func TestSearchEmptyResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	defer server.Close()

	products, err := client.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearchUpstreamError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrDependencyFailure)
}
