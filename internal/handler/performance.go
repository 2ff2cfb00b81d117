package handler

import (
	"github.com/gin-gonic/gin"

	"tradervault/internal/performance"
)

type PerformanceHandler struct{}

func (h *PerformanceHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/performance", h.report)
}

func (h *PerformanceHandler) report(c *gin.Context) {
	Ok(c, performance.SampleReport(), nil)
}
