package response

import (
	"errors"
	"net/http"
	"time"

	"microfinance-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the error envelope. Details carries structured context
// such as the shortfall of an insufficient-funds rejection.
type ErrorResponse struct {
	ErrorCode string         `json:"error_code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id"`
	Timestamp string         `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, success(c, data))
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, success(c, data))
}

// NoContent sends an empty 204, used when a resource was removed.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders err. Errors outside the apperror chain are reported as
// SYS_001 without exposing their text.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Details:   appErr.Details,
		RequestID: RequestID(c),
		Timestamp: now(),
	})
}

// RequestID returns the id set by the request-id middleware, or a fresh one.
func RequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}

func success(c *gin.Context, data any) SuccessResponse {
	return SuccessResponse{Data: data, RequestID: RequestID(c), Timestamp: now()}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
