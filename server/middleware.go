package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader carries the request ID back to the client. An ID sent
// by the client on the same header is kept, otherwise one is generated.
const requestIDHeader = "X-Request-ID"

// requestLogger tags every request with an ID and logs method, path,
// status and timing once the handler chain finishes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()

		s.logger.Info("Handled request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration in milliseconds", time.Since(now).Milliseconds())
	}
}

// recovery converts a handler panic into the API's JSON error shape and
// keeps the server running.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Recovered from panic",
					"err", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": fmt.Sprintf("Error processing message: %v", r),
				})
			}
		}()
		c.Next()
	}
}
