package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON payloads for the AJAX routes use a plain map.
type Response map[string]interface{}

// JSONOK writes a 200 response with the given body.
func JSONOK(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// JSONUnauthorized writes the 401 body used by the toggle endpoint.
func JSONUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Unauthorized",
	})
}
