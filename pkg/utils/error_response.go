package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the failure envelope shared by every route:
// {success:false, error}. The message is whatever the failing layer reported.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// SuccessResponse writes payload under the success envelope.
func SuccessResponse(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}
