package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Trader Vault API

Backend for the Trader Vault dashboard.

## Auth

All /api/v1/* routes except /api/v1/auth/* require a Bearer token from
signup/signin. Health endpoints are public.

## Routes

- GET  /healthz
- GET  /readyz
- POST /api/v1/auth/signup
- POST /api/v1/auth/signin
- POST /api/v1/auth/signout
- GET  /api/v1/auth/me
- GET  /api/v1/portfolio/summary
- GET  /api/v1/portfolio/trades
- GET  /api/v1/trades?status=&limit=&offset=
- POST /api/v1/trades/demo
- GET  /api/v1/accounts
- POST /api/v1/accounts/toggle
- GET  /api/v1/profile
- PUT  /api/v1/profile
- GET  /api/v1/withdrawals
- POST /api/v1/withdrawals
- GET  /api/v1/performance
- GET  /api/v1/market-data
`)
	})
}
