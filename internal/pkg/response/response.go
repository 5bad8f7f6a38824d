package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain"
)

// Response is the envelope of every API reply.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message, Details: details},
	})
}

// CustomError accepts either a message string, an error, or validation details.
func CustomError(c *gin.Context, statusCode int, code string, v any) {
	switch val := v.(type) {
	case string:
		Error(c, statusCode, code, val)
	case error:
		Error(c, statusCode, code, val.Error())
	default:
		ErrorWithDetails(c, statusCode, code, http.StatusText(statusCode), val)
	}
}

// StatusCode maps a service status onto HTTP.
func StatusCode(status domain.ServiceStatus) int {
	switch status {
	case domain.StatusCreated:
		return http.StatusCreated
	case domain.StatusUpdated:
		return http.StatusOK
	case domain.StatusDeleted:
		return http.StatusNoContent
	case domain.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromService writes a mutating operation's result. A non-nil err wins over res.
func FromService(c *gin.Context, res domain.ServiceResponse, err error) {
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			Error(c, http.StatusConflict, "CONCURRENCY_CONFLICT", "The record was changed by another request")
			return
		}
		CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	code := StatusCode(res.Status)
	switch res.Status {
	case domain.StatusCreated, domain.StatusUpdated:
		Success(c, code, res)
	case domain.StatusDeleted:
		c.Status(code)
	case domain.StatusNotFound:
		ErrorWithDetails(c, code, "NOT_FOUND", joinMessages(res, "Not found"), res.Messages)
	default:
		ErrorWithDetails(c, code, "OPERATION_FAILED", joinMessages(res, "Operation failed"), res.Messages)
	}
}

func joinMessages(res domain.ServiceResponse, fallback string) string {
	if len(res.Messages) == 0 {
		return fallback
	}
	return strings.Join(res.Messages, " ")
}
