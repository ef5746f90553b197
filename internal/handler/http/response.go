// Package http holds the gin handlers and the response envelope.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Yashkhope01/Blog/internal/service"
)

// Every response uses the same envelope:
// {success, data?, message?, count?, total?, page?, pages?}.

// SuccessResponse writes a bare success envelope around data.
func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// MessageResponse writes a success envelope carrying a human-readable
// message next to the data.
func MessageResponse(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// CountResponse writes a success envelope for an unpaged list.
func CountResponse(c *gin.Context, code int, data interface{}, count int) {
	c.JSON(code, gin.H{"success": true, "count": count, "data": data})
}

// PagedResponse writes a success envelope for one page of a listing.
func PagedResponse(c *gin.Context, code int, data interface{}, page service.PageInfo) {
	c.JSON(code, gin.H{
		"success": true,
		"count":   page.Count,
		"total":   page.Total,
		"page":    page.Page,
		"pages":   page.Pages,
		"data":    data,
	})
}

// ErrorResponse writes the failure envelope; the message is what clients
// surface directly.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}
