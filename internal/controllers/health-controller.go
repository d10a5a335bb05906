package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "restaurant-pizza-api"

// Pinger reports whether a dependency is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service and its database are running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func HealthCheck(db Pinger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := db.PingContext(ctx.Request.Context()); err != nil {
			requestLogger(ctx).WithError(err).Error("Database ping failed")
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		ctx.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
