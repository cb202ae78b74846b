package utils

import "github.com/gin-gonic/gin"

// JSONError writes the error envelope used by every failure response.
func JSONError(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"detail": detail})
}

// AbortError is JSONError for middleware, stopping the handler chain.
func AbortError(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": detail})
}
