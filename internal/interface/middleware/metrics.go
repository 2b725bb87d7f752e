package middleware

import (
	"expvar"
	"strconv"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that hit no registered route, so arbitrary
// URLs cannot add keys to the map
const unmatchedRoute = "unmatched"

var (
	requestsByStatus = expvar.NewMap("http_requests_by_status")
	requestsByRoute  = expvar.NewMap("http_requests_by_route")
)

// Metrics counts requests per status code and per route pattern in expvar
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		requestsByStatus.Add(strconv.Itoa(c.Writer.Status()), 1)
		requestsByRoute.Add(c.Request.Method+" "+routeLabel(c), 1)
	}
}

func routeLabel(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return unmatchedRoute
}
