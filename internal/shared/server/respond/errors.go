package respond

import (
	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/telemetry"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error logs the failure and aborts the request with an error body.
func Error(c *gin.Context, status int, message, details string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if details != "" {
		fields["details"] = details
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
