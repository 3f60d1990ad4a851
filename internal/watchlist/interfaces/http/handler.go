package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/trendly/pricetrack/internal/catalog/domain"
	"github.com/trendly/pricetrack/internal/watchlist/application"
	"github.com/trendly/pricetrack/internal/watchlist/domain"
	"github.com/trendly/pricetrack/pkg/middleware"
)

type Handler struct {
	cmd   *application.WatchlistCommandService
	query *application.WatchlistQueryService
}

func NewHandler(cmd *application.WatchlistCommandService, query *application.WatchlistQueryService) *Handler {
	return &Handler{cmd: cmd, query: query}
}

// RegisterRoutes 注册路由，authRequired 必须先于处理器生效
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc) {
	g := r.Group("/watchlist", authRequired)
	g.GET("", h.List)
	g.POST("", h.Add)
	g.DELETE("/:productId", h.Remove)
	g.PATCH("/:productId", h.Update)

	r.GET("/dashboard/stats", authRequired, h.Stats)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.query.ListForUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Add(c *gin.Context) {
	var req struct {
		ProductID    string  `json:"productId" binding:"required"`
		TargetPrice  float64 `json:"targetPrice"`
		AlertEnabled *bool   `json:"alertEnabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input data"})
		return
	}

	entry, err := h.cmd.AddItem(c.Request.Context(), application.AddItemCommand{
		UserID:       c.GetString(middleware.UserIDKey),
		ProductID:    req.ProductID,
		TargetPrice:  req.TargetPrice,
		AlertEnabled: req.AlertEnabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrProductNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product not found"})
		case errors.Is(err, domain.ErrDuplicateEntry):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product already in watchlist"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) Remove(c *gin.Context) {
	removed, err := h.cmd.RemoveItem(c.Request.Context(), application.RemoveItemCommand{
		UserID:    c.GetString(middleware.UserIDKey),
		ProductID: c.Param("productId"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in watchlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from watchlist"})
}

func (h *Handler) Update(c *gin.Context) {
	var req struct {
		TargetPrice  *float64 `json:"targetPrice"`
		AlertEnabled *bool    `json:"alertEnabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input data"})
		return
	}

	entry, err := h.cmd.UpdateItem(c.Request.Context(), application.UpdateItemCommand{
		UserID:       c.GetString(middleware.UserIDKey),
		ProductID:    c.Param("productId"),
		TargetPrice:  req.TargetPrice,
		AlertEnabled: req.AlertEnabled,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in watchlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.query.Stats(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
