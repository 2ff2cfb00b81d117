package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradervault/internal/auth"
	"tradervault/internal/portfolio"
	"tradervault/internal/service"
)

type PortfolioHandler struct {
	Service *service.PortfolioService
	Logger  *zap.Logger
}

func (h *PortfolioHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/portfolio")
	g.GET("/summary", h.summary)
	g.GET("/trades", h.recentTrades)
}

func (h *PortfolioHandler) summary(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	out, err := h.Service.Summary(c.Request.Context(), userID)
	if err != nil {
		// Read failures degrade to the zero state instead of failing the page.
		if h.Logger != nil {
			h.Logger.Warn("portfolio summary fetch failed", zap.String("user_id", userID), zap.Error(err))
		}
		Ok(c, portfolio.Summary{}, map[string]any{
			"degraded": true,
			"message":  "failed to fetch portfolio data",
		})
		return
	}
	Ok(c, out, nil)
}

func (h *PortfolioHandler) recentTrades(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	items, err := h.Service.RecentTrades(c.Request.Context(), userID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("recent trades fetch failed", zap.String("user_id", userID), zap.Error(err))
		}
		Ok(c, []any{}, map[string]any{
			"degraded": true,
			"message":  "failed to fetch portfolio data",
		})
		return
	}
	Ok(c, items, nil)
}
