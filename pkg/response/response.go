package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope used by every regular API endpoint.
// Data is always present on success, including empty lists, so clients can
// index into it without checking for the key. Error carries field details
// when validation of the raw payload fails.
type APIResponse[T any] struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    T           `json:"data"`
	Error   interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given status.
func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope and returns it so middleware can abort
// with the same body.
func Error(c *gin.Context, status int, message string, details interface{}) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[any]{
		Success: false,
		Message: message,
		Error:   details,
	}
	c.JSON(status, resp)
	return resp
}
