package server

import (
	"net/http"
	"time"

	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the per-request ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(RequestIDHeader)
	if !utils.IsID(requestID) {
		requestID = utils.GenerateID()
	}
	c.Set("request_id", requestID)
	c.Header(RequestIDHeader, requestID)

	c.Next() // process request

	fields := map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	}
	if c.Writer.Status() >= http.StatusInternalServerError {
		utils.Error("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}

// CORSMiddleware allows the browser front end on allowOrigin to call the API.
// An empty or "*" origin reflects the caller's Origin header.
func CORSMiddleware(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := allowOrigin
		if origin == "" || origin == "*" {
			origin = c.GetHeader("Origin")
			if origin == "" {
				origin = "*"
			}
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Vary", "Origin")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// BodyLimitMiddleware caps request bodies at maxBytes
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
