package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coldchain/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects request bodies larger than maxBytes. Requests with a
// larger declared Content-Length fail fast; chunked bodies are capped while
// being read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Request body too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
