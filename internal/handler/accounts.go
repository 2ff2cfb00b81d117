package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradervault/internal/auth"
	"tradervault/internal/service"
)

type AccountHandler struct {
	Service *service.AccountService
}

func (h *AccountHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/accounts")
	g.GET("", h.list)
	g.POST("/toggle", h.toggle)
}

func (h *AccountHandler) list(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	items, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, "failed to fetch accounts", nil)
		return
	}
	Ok(c, items, nil)
}

func (h *AccountHandler) toggle(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	active, err := h.Service.ToggleAITrading(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"ai_active": active}, nil)
}
