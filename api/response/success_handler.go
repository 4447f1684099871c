package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func writeSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      status,
		RequestID: getRequestID(c),
	})
}

func HandleSuccess(c *gin.Context, data interface{}, message string) {
	writeSuccess(c, http.StatusOK, data, message)
}

// HandleCreated 201 carrying the stored aggregate
func HandleCreated(c *gin.Context, data interface{}, message string) {
	writeSuccess(c, http.StatusCreated, data, message)
}

// HandleList wraps a collection with its size
func HandleList(c *gin.Context, list ListData, message string) {
	writeSuccess(c, http.StatusOK, list, message)
}

// HandleNoContent 204 after a delete
func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
