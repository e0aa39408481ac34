package handlers

import "github.com/gin-gonic/gin"

// Сообщения, общие для нескольких ручек.
const (
	msgServerError   = "A server error has occurred."
	msgNoBody        = "No request body provided."
	msgMissingFields = "One or more required fields from the request body are missing."
	msgPostNotFound  = "Could not find that post."
)

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func ok(c *gin.Context, message string) {
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
	})
}

func okData(c *gin.Context, message string, data any) {
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}
