package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = "<h1>Code challenge</h1>"

// Index godoc
// @Summary Index
// @Description HTML greeting
// @Tags home
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
