package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tradervault/internal/auth"
	"tradervault/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func (h *AuthHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/auth")
	g.POST("/signup", h.signUp)
	g.POST("/signin", h.signIn)
	g.POST("/signout", h.signOut)
	g.GET("/me", h.me)
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expires_at"`
	User      userView `json:"user"`
}

type userView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

func (h *AuthHandler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	sess, err := h.Service.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, service.ErrEmailTaken) {
			status = http.StatusConflict
		}
		// Auth failures are surfaced verbatim.
		Error(c, status, err.Error(), nil)
		return
	}
	Ok(c, sessionView(sess), nil)
}

func (h *AuthHandler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	sess, err := h.Service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	Ok(c, sessionView(sess), nil)
}

func (h *AuthHandler) signOut(c *gin.Context) {
	tok := bearer(c)
	if tok == "" {
		Error(c, http.StatusBadRequest, "missing bearer token", nil)
		return
	}
	if err := h.Service.SignOut(c.Request.Context(), tok); err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"signed_out": true}, nil)
}

func (h *AuthHandler) me(c *gin.Context) {
	// /auth/* is open in the middleware, so verify here.
	tok := bearer(c)
	if tok == "" {
		Error(c, http.StatusUnauthorized, "missing bearer token", nil)
		return
	}
	claims, err := h.Service.JWT.Verify(tok)
	if err != nil {
		Error(c, http.StatusUnauthorized, "invalid token", nil)
		return
	}
	if auth.IsRevoked(c.Request.Context(), h.Service.Revoked, claims.ID) {
		Error(c, http.StatusUnauthorized, "token revoked", nil)
		return
	}
	user, err := h.Service.CurrentUser(c.Request.Context(), claims.Subject)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if user == nil {
		Error(c, http.StatusUnauthorized, "user not found", nil)
		return
	}
	Ok(c, userView{ID: user.ID, Email: user.Email, FullName: user.FullName}, nil)
}

func sessionView(sess service.Session) sessionResponse {
	return sessionResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
		User: userView{
			ID:       sess.User.ID,
			Email:    sess.User.Email,
			FullName: sess.User.FullName,
		},
	}
}

func bearer(c *gin.Context) string {
	v := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
