package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONValidation renders the 422 shape for field-level input failures:
// a stable message plus field-keyed reasons the client can surface inline.
func JSONValidation(c *gin.Context, message string, fields map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": message,
		"errors":  fields,
	})
}

// JSONNotFound renders a missing-resource response.
func JSONNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": message,
	})
}

// JSONConflict renders a business-rule rejection at 422 with its
// machine-readable reason code. extra carries optional detail such as
// field errors, conflicting date ranges, or offending ids.
func JSONConflict(c *gin.Context, code, message string, extra gin.H) {
	body := gin.H{
		"success": false,
		"code":    code,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}
