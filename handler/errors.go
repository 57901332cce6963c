package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mercadolivro/bookstore-backend/apperror"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	HTTPCode     int          `json:"http_code"`
	Message      string       `json:"message"`
	InternalCode string       `json:"internal_code,omitempty"`
	Errors       []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindValidation, apperror.KindUpdateNotAllowed:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Domain errors keep their code; anything else is a 500
// whose cause is only logged.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	if dErr, ok := apperror.As(err); ok {
		status := statusFor(dErr.Kind)
		c.JSON(status, ErrorResponse{HTTPCode: status, Message: dErr.Message, InternalCode: dErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		HTTPCode: http.StatusInternalServerError,
		Message:  "internal server error",
	})
}

// writeBindingError answers 422 with one entry per failed field when the
// payload decoded but failed validation, 400 when it could not be decoded.
func writeBindingError(c *gin.Context, err error) {
	_ = c.Error(err)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			HTTPCode:     http.StatusBadRequest,
			Message:      apperror.ML001.Message,
			InternalCode: apperror.ML001.Code,
			Errors:       []FieldError{{Message: err.Error()}},
		})
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldName(fe), Message: fieldMessage(fe)})
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		HTTPCode:     http.StatusUnprocessableEntity,
		Message:      apperror.ML001.Message,
		InternalCode: apperror.ML001.Code,
		Errors:       fields,
	})
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email"
	case emailAvailableTag:
		return "email already in use"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
