package controllers

import (
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the controllers logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// requestLogger returns a log entry tagged with the current request
func requestLogger(ctx *gin.Context) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"request_id": ctx.GetString(middleware.RequestIDKey),
		"method":     ctx.Request.Method,
		"path":       ctx.FullPath(),
	})
}

// parseID reads the numeric id path parameter
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
