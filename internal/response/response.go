// Package response renders the uniform error envelope. Only the boundary
// middleware writes it; handlers and services raise typed errors instead.
package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// MessageError is the fixed message carried by every error envelope.
const MessageError = "ERROR"

const timestampLayout = "2006-01-02 03:04:05"

// Timestamp renders as "yyyy-MM-dd hh:mm:ss" (12-hour clock, matching the
// upstream consumers of this envelope).
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(timestampLayout) + `"`), nil
}

// ErrorResponse is the envelope returned for every 4xx/5xx, regardless of
// which handler failed. Only Status and Errors vary between failure kinds.
type ErrorResponse struct {
	Timestamp Timestamp         `json:"timestamp"`
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors"`
	Path      string            `json:"path"`
}

// WriteError writes the envelope for the given status. fields is nil for
// everything except validation failures and marshals as null.
func WriteError(c *gin.Context, status int, fields map[string]string) {
	c.JSON(status, ErrorResponse{
		Timestamp: Timestamp(time.Now()),
		Status:    status,
		Message:   MessageError,
		Errors:    fields,
		Path:      c.Request.URL.Path,
	})
}
