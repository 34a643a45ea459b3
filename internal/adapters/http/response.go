package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/domain"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Error types not backed by a domain error code.
const (
	errorTypeInternal = "internal"
	errorTypeNotFound = "not_found"
)

func successResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func errorResponse(c *gin.Context, statusCode int, errorType, message string) {
	c.AbortWithStatusJSON(statusCode, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: errorType, Message: message},
	})
}

// describeError maps err to a status code, an error type and the key of its
// user-facing message. Errors without a known domain code are reported as
// internal so details never leak to clients.
func describeError(err error) (status int, errorType, messageKey string) {
	switch code := domain.Code(err); code {
	case "namespace_not_found":
		// a page asking for a namespace the store lacks is a deployment fault
		return http.StatusInternalServerError, code, "error.namespace_not_found"
	default:
		return http.StatusInternalServerError, errorTypeInternal, "error.internal"
	}
}
