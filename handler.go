package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const timestampLayout = "2006-01-02T15:04:05"

// response is the body served on "/". Field order matches the sorted keys
// the service has always emitted.
type response struct {
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// newRouter returns the engine serving the root route for every method.
// Any other path falls through to gin's default 404.
func newRouter(now func() time.Time, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware...)
	r.Any("/", infoHandler(now))
	return r
}

func infoHandler(now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response{
			IP:        "your ip is " + clientAddress(c),
			Timestamp: formatTimestamp(now()),
		})
	}
}

// clientAddress trusts X-Forwarded-For as-is: the first comma-separated
// token wins, untrimmed. Anyone can spoof it when not behind a proxy.
func clientAddress(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.Split(xff, ",")[0]
	}
	if ip := c.RemoteIP(); ip != "" {
		return ip
	}
	return c.Request.RemoteAddr
}

// formatTimestamp renders t in its own zone without an offset, truncated to
// microseconds. A zero microsecond drops the fraction entirely.
func formatTimestamp(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampLayout + ".000000")
}
