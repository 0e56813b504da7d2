package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	started          time.Time
	vendorConfigured bool
}

func NewHealthHandler(vendorConfigured bool) *HealthHandler {
	return &HealthHandler{started: time.Now(), vendorConfigured: vendorConfigured}
}

func (h *HealthHandler) Health(c *gin.Context) {
	vendor := "configured"
	if !h.vendorConfigured {
		vendor = "unconfigured"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"vendor": vendor,
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
