package handler

import (
	"errors"
	"net/http"

	"microfinance-ledger/internal/adapter/http/dto"
	"microfinance-ledger/internal/adapter/http/middleware"
	"microfinance-ledger/pkg/apperror"
	"microfinance-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// bindJSON decodes and sanitizes the request body. An empty body is
// validated as the zero request. It writes the error response itself and
// reports whether the handler should continue.
func bindJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		if err := binding.Validator.ValidateStruct(req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return false
		}
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// pathID parses a uuid path parameter.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated operator.
func actor(c *gin.Context) (string, bool) {
	a := middleware.ActorID(c)
	if a == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return a, true
}
