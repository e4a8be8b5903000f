package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the envelope every API route answers with.
type Response struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}

// Meta carries the outcome and the request correlation id.
type Meta struct {
	Code      int           `json:"code"`
	Message   string        `json:"message"`
	RequestID string        `json:"requestId,omitempty"`
	Details   []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail points at the request field that failed validation.
type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}

// Success answers 200 with data inside the envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Meta: Meta{
			Code:      http.StatusOK,
			Message:   "OK",
			RequestID: requestID(c),
		},
		Data: data,
	})
}

// Error answers with an error envelope and no data.
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, Response{
		Meta: Meta{
			Code:      httpCode,
			Message:   message,
			RequestID: requestID(c),
		},
	})
}

// ErrorWithDetails answers with an error envelope plus per-field details.
func ErrorWithDetails(c *gin.Context, httpCode int, message string, details []ErrorDetail) {
	c.JSON(httpCode, Response{
		Meta: Meta{
			Code:      httpCode,
			Message:   message,
			RequestID: requestID(c),
			Details:   details,
		},
	})
}

// BadRequest answers 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// BadRequestWithValidation answers 400, unpacking validator errors into
// per-field details when the binding failure carries them.
func BadRequestWithValidation(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: getValidationErrorMessage(fieldErr),
			})
		}
		ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details)
		return
	}

	BadRequest(c, err.Error())
}

// InternalError answers 500.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
