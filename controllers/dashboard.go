package controllers

import (
	"context"
	"net/http"
	"time"

	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDashboard returns the pipeline summary
func (ctl *Controller) GetDashboard(c *gin.Context) {
	dashboard, err := ctl.Store.Dashboard(ctx(c), time.Now().UTC())
	if err != nil {
		utils.InternalError(c, "getDashboard", err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Health reports whether the database answers
func (ctl *Controller) Health(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx(c), 2*time.Second)
	defer cancel()

	if err := ctl.Store.Ping(pingCtx); err != nil {
		utils.Logger(c).Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
