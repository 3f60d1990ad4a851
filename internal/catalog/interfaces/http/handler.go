package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trendly/pricetrack/internal/catalog/application"
	"github.com/trendly/pricetrack/internal/catalog/domain"
)

type Handler struct {
	cmd   *application.CatalogCommandService
	query *application.CatalogQueryService
}

func NewHandler(cmd *application.CatalogCommandService, query *application.CatalogQueryService) *Handler {
	return &Handler{cmd: cmd, query: query}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/products")
	g.GET("", h.List)
	g.GET("/trending", h.Trending)
	g.GET("/search", h.Search)
	g.GET("/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	products, err := h.query.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) Trending(c *gin.Context) {
	limit := application.DefaultTrendingLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
			return
		}
		limit = parsed
	}

	products, err := h.query.TrendingProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")
	store := c.Query("store")

	products, err := h.query.SearchProducts(c.Request.Context(), query, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if store != "" {
		filtered := make([]*domain.Product, 0, len(products))
		for _, p := range products {
			if p.Store == store {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) Get(c *gin.Context) {
	product, err := h.query.GetProductWithHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, product)
}
