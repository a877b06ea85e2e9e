package handlers

import "github.com/gin-gonic/gin"

// respondMessage writes the auth surface's error/confirmation payload shape.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
