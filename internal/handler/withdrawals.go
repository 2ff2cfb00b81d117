package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tradervault/internal/auth"
	"tradervault/internal/repository"
	"tradervault/internal/service"
)

type WithdrawalHandler struct {
	Service *service.WithdrawalService
}

func (h *WithdrawalHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/withdrawals")
	g.GET("", h.list)
	g.POST("", h.create)
}

func (h *WithdrawalHandler) list(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	items, err := h.Service.List(c.Request.Context(), repository.ListWithdrawalsParams{
		UserID: userID,
		Status: strQueryPtr(c, "status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		Error(c, http.StatusBadGateway, "failed to fetch withdrawal requests", nil)
		return
	}
	Ok(c, items, nil)
}

type createWithdrawalRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod json.RawMessage `json:"payment_method"`
}

func (h *WithdrawalHandler) create(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	var req createWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item, err := h.Service.Create(c.Request.Context(), userID, req.Amount, datatypes.JSON(req.PaymentMethod))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}
