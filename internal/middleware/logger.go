package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID holds the request's correlation id.
const ContextKeyRequestID = "request_id"

// RequestID propagates an incoming X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger writes one access line per request: request id, acting user,
// method, route template, status and latency. Requests whose path is in
// skipPaths (health checks) are not logged unless they fail.
func Logger(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		if _, ok := skip[c.Request.URL.Path]; ok && status < http.StatusInternalServerError {
			return
		}

		// Route templates keep ids out of the log so lines group by endpoint.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		user := "-"
		if id, err := GetUserID(c); err == nil {
			user = id.String()
		}
		requestID, _ := c.Get(ContextKeyRequestID)

		line := []interface{}{requestID, user, c.Request.Method, route, status, latency.Round(time.Microsecond)}
		if errs := c.Errors.ByType(gin.ErrorTypeAny).String(); errs != "" {
			log.Printf("[%s] user=%s %s %s %d %s errors=%q", append(line, strings.TrimSpace(errs))...)
			return
		}
		log.Printf("[%s] user=%s %s %s %d %s", line...)
	}
}

// Recovery turns a panic into the standard 500 error envelope and logs it
// with the request id.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID, _ := c.Get(ContextKeyRequestID)
		log.Printf("[%s] panic %s %s: %v", requestID, c.Request.Method, c.FullPath(), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "an internal error occurred"},
		})
	})
}
