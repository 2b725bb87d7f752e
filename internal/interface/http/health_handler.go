package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe. It does not touch the store.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// NotFound renders unknown routes with the error envelope
func NotFound(c *gin.Context) {
	writeError(c, nil, errRouteNotFound)
}
