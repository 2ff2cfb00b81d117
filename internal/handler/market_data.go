package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradervault/internal/repository"
)

type MarketDataHandler struct {
	Repo repository.Repository
}

func (h *MarketDataHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/market-data", h.list)
}

func (h *MarketDataHandler) list(c *gin.Context) {
	items, err := h.Repo.ListMarketData(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, "failed to fetch market data", nil)
		return
	}
	Ok(c, items, nil)
}
