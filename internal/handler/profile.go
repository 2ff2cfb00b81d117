package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradervault/internal/auth"
	"tradervault/internal/models"
	"tradervault/internal/service"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func (h *ProfileHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/profile")
	g.GET("", h.get)
	g.PUT("", h.update)
}

type profileView struct {
	Configured    bool   `json:"configured"`
	FullName      string `json:"full_name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	KYCStatus     string `json:"kyc_status,omitempty"`
	RiskTolerance string `json:"risk_tolerance,omitempty"`
}

func (h *ProfileHandler) get(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	item, err := h.Service.Get(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, "failed to fetch profile", nil)
		return
	}
	// No row yet means "no profile configured", not an error.
	if item == nil {
		Ok(c, profileView{Configured: false}, nil)
		return
	}
	Ok(c, toProfileView(item), nil)
}

type updateProfileRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone"`
	RiskTolerance string `json:"risk_tolerance"`
}

func (h *ProfileHandler) update(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == "" {
		Error(c, http.StatusUnauthorized, "missing user", nil)
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item, err := h.Service.Update(c.Request.Context(), userID, service.ProfileUpdate{
		FullName:      req.FullName,
		Phone:         req.Phone,
		RiskTolerance: req.RiskTolerance,
	})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, toProfileView(item), nil)
}

func toProfileView(p *models.Profile) profileView {
	if p == nil {
		return profileView{Configured: false}
	}
	return profileView{
		Configured:    true,
		FullName:      p.FullName,
		Phone:         p.Phone,
		KYCStatus:     p.KYCStatus,
		RiskTolerance: p.RiskTolerance,
	}
}
