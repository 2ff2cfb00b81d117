package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradervault/internal/auth"
	"tradervault/internal/repository"
	"tradervault/internal/service"
)

type TradeHandler struct {
	Service *service.TradeService
}

func (h *TradeHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/trades")
	g.GET("", h.list)
	g.POST("/demo", h.addDemo)
}

func (h *TradeHandler) list(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListTradesParams{
		UserID: userID,
		Status: strQueryPtr(c, "status"),
		Limit:  limit,
		Offset: offset,
	}
	out, err := h.Service.List(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, "failed to fetch trading history", nil)
		return
	}
	Ok(c, out.Items, paginationMeta(limit, offset, out.Total))
}

func (h *TradeHandler) addDemo(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	trade, items, err := h.Service.AddDemoTrade(c.Request.Context(), userID)
	if err != nil {
		// Write failures surface the storage error; no prior step is undone.
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"trade": trade, "trades": items}, nil)
}
