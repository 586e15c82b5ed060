package handlers

import "github.com/gin-gonic/gin"

// All endpoints answer with the same envelope:
// { "status": "success"|"error", "message": string, "data": payload }

func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
		"data":    nil,
	})
}
