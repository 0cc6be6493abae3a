package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// maxRequestIDLen bounds client-supplied ids before they reach logs and responses.
const maxRequestIDLen = 64

// RequestIDMiddleware tags every request with an ID, reusing a well-formed
// X-Request-ID header from the client and generating a UUID otherwise.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}

// RequestID returns the ID assigned by RequestIDMiddleware, or "" when absent.
func RequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
