package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umazing/store-dashboard-bff/pkg/utils"
)

// MaxBodySize caps the request body on the write routes. Product payloads
// carry base64-encoded images inline, so the cap bounds how much a single
// submission can inflate to.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
