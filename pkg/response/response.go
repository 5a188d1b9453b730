// Package response builds the uniform API envelope. Every envelope carries
// the request ID minted once per request by the requestid middleware, and
// every construction emits a matching log line tagged with that ID.
package response

import (
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"taskengine-backend/pkg/apperror"
	"taskengine-backend/pkg/logging"
)

// ErrorDetail is a single entry in the envelope errors list. Validation and
// conflict errors carry field/code; internal errors carry type/detail.
type ErrorDetail struct {
	Field  string `json:"field,omitempty"`
	Code   string `json:"code,omitempty"`
	Type   string `json:"type,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Envelope is the standardized API response body.
type Envelope struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Data      any           `json:"data,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// Success writes a success envelope and logs it at info level.
func Success(c *gin.Context, status int, message string, data any) {
	env := Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
		RequestID: requestid.Get(c),
	}
	logging.From(c).Info(message, "status", status)
	c.JSON(status, env)
}

// Error writes a failure envelope and logs it at error level.
func Error(c *gin.Context, status int, message string, details ...ErrorDetail) {
	env := Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: requestid.Get(c),
		Errors:    details,
	}
	logging.From(c).Error(message, "status", status)
	c.JSON(status, env)
}

// NoContent logs the outcome and writes an empty 204. The request ID still
// reaches the caller via the X-Request-ID header.
func NoContent(c *gin.Context, message string) {
	logging.From(c).Info(message, "status", http.StatusNoContent)
	c.Status(http.StatusNoContent)
}

// FromError maps an application error onto the envelope. Internal causes are
// logged in full but never shown to the client.
func FromError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.Kind == apperror.Internal {
		logging.From(c).Error("unexpected failure",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client", c.ClientIP(),
			"error", appErr.Error(),
		)
		Error(c, http.StatusInternalServerError, "internal server error",
			ErrorDetail{Type: "internal_error", Detail: "an unexpected error occurred"})
		return
	}

	var details []ErrorDetail
	if appErr.Field != "" || appErr.Code != "" {
		details = []ErrorDetail{{Field: appErr.Field, Code: appErr.Code}}
	}
	Error(c, appErr.StatusCode(), appErr.Message, details...)
}
