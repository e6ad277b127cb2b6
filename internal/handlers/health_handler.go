package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process liveness only; it does not probe the sheet.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "Ok")
}
