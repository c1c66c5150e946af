package httpx

import (
	"errors"
	"net/http"

	"pawcare-admin/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes the failure envelope for a service-layer error.
// Errors that are not ServiceErrors are reported with fallbackMessage.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		Fail(c, http.StatusRequestEntityTooLarge, "Request body too large", nil)
		return
	}

	serviceErr, ok := service.AsServiceError(err)
	if !ok {
		_ = c.Error(err)
		Fail(c, http.StatusInternalServerError, fallbackMessage, nil)
		return
	}
	if serviceErr.Err != nil {
		_ = c.Error(serviceErr.Err)
	}

	var details any
	if len(serviceErr.Fields) > 0 {
		details = serviceErr.Fields
	} else if serviceErr.Field != "" {
		details = []service.FieldError{{Field: serviceErr.Field, Message: serviceErr.Message}}
	}
	Fail(c, ServiceErrorStatus(serviceErr.Code), serviceErr.Message, details)
}

func ServiceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden, service.ErrorCodeInactive:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	case service.ErrorCodeLocked:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
