package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendly/pricetrack/internal/marketsearch/domain"
	"github.com/trendly/pricetrack/pkg/logger"
)

type Handler struct {
	searcher domain.Searcher
}

func NewHandler(searcher domain.Searcher) *Handler {
	return &Handler{searcher: searcher}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mws ...gin.HandlerFunc) {
	handlers := append(mws, h.Search)
	r.GET("/search", handlers...)
}

func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing query"})
		return
	}

	products, err := h.searcher.Search(c.Request.Context(), query)
	if err != nil {
		logger.Error(c.Request.Context(), "External product search failed", "query", query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Product search failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
