package handler

import (
	"context"

	"microfinance-ledger/internal/adapter/http/dto"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CashSessionHandler handles teller sessions. The cashier is the
// authenticated operator.
type CashSessionHandler struct {
	sessionSvc ports.CashSessionService
}

// NewCashSessionHandler creates a new CashSessionHandler.
func NewCashSessionHandler(sessionSvc ports.CashSessionService) *CashSessionHandler {
	return &CashSessionHandler{sessionSvc: sessionSvc}
}

// Open handles POST /api/v1/cash-sessions.
func (h *CashSessionHandler) Open(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	var req dto.OpenSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	opening, err := dto.ParseBalances(req.OpeningBalances)
	if err != nil {
		response.Error(c, err)
		return
	}
	s, err := h.sessionSvc.Open(c.Request.Context(), operator, opening)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToSessionResponse(s))
}

// Get handles GET /api/v1/cash-sessions/:id.
func (h *CashSessionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := h.sessionSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToSessionResponse(s))
}

// Pause handles POST /api/v1/cash-sessions/:id/pause.
func (h *CashSessionHandler) Pause(c *gin.Context) {
	h.transition(c, h.sessionSvc.Pause)
}

// Resume handles POST /api/v1/cash-sessions/:id/resume.
func (h *CashSessionHandler) Resume(c *gin.Context) {
	h.transition(c, h.sessionSvc.Resume)
}

func (h *CashSessionHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*domain.CashSession, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToSessionResponse(s))
}

// Close handles POST /api/v1/cash-sessions/:id/close.
func (h *CashSessionHandler) Close(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CloseSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	declared, err := dto.ParseBalances(req.DeclaredBalances)
	if err != nil {
		response.Error(c, err)
		return
	}
	rec, err := h.sessionSvc.Close(c.Request.Context(), id, declared)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToSessionReconciliation(rec))
}
