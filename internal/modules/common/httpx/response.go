package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	Timestamp string `json:"timestamp"`
}

func envelope(success bool, message string, data, errs any) Envelope {
	return Envelope{
		Success:   success,
		Message:   message,
		Data:      data,
		Errors:    errs,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope(true, message, data, nil))
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, envelope(true, message, data, nil))
}

// Fail writes a failure envelope and aborts the handler chain.
func Fail(c *gin.Context, status int, message string, errs any) {
	c.AbortWithStatusJSON(status, envelope(false, message, nil, errs))
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message, nil)
}
