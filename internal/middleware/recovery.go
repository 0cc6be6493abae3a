package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/response"
)

// Recovery turns a handler panic into a 500 INTERNAL_ERROR envelope.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("request_id", response.RequestID(c)).
			Msg("recovered from panic")
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	})
}
