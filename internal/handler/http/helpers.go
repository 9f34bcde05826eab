package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/handler/http/dto"
)

// statusForKind maps domain error kinds to HTTP status codes. This is the
// only place the mapping lives.
func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindDependency:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RespondError translates a domain error into the uniform failure envelope:
// "fail" for 4xx, "error" for 5xx, and the internal detail masked.
func RespondError(c *gin.Context, err error) {
	code := statusForKind(apperror.KindOf(err))
	status := "fail"
	if code >= http.StatusInternalServerError {
		status = "error"
	}
	c.JSON(code, dto.ErrorEnvelope{Status: status, Message: apperror.MessageOf(err)})
}

// ErrorHandler emits a failure envelope with an explicit status code.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	status := "fail"
	if statusCode >= http.StatusInternalServerError {
		status = "error"
	}
	c.JSON(statusCode, dto.ErrorEnvelope{Status: status, Message: message})
}

// SuccessHandler centralizes success responses.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Data: data})
}

// ListHandler is SuccessHandler plus the result count.
func ListHandler(c *gin.Context, statusCode int, results int, data interface{}) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Results: &results, Data: data})
}

// TokenHandler responds with a fresh session token plus optional data.
func TokenHandler(c *gin.Context, statusCode int, token string, data interface{}) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Token: token, Data: data})
}

// MessageHandler wraps a plain message into the success envelope.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Data: gin.H{"message": message}})
}

// BindAndValidate binds the JSON request body and reports a validation
// failure in the uniform envelope.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}
