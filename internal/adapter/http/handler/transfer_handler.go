package handler

import (
	"microfinance-ledger/internal/adapter/http/dto"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles transfers and entry cancellation.
type TransferHandler struct {
	ledgerSvc   ports.LedgerService
	transferSvc ports.TransferService
	reversalSvc ports.ReversalService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledgerSvc ports.LedgerService, transferSvc ports.TransferService, reversalSvc ports.ReversalService) *TransferHandler {
	return &TransferHandler{ledgerSvc: ledgerSvc, transferSvc: transferSvc, reversalSvc: reversalSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *TransferHandler) Transfer(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	// Binding already checked both ids.
	src := uuid.MustParse(req.SourceAccountID)
	dst := uuid.MustParse(req.DestinationAccountID)

	source, err := h.ledgerSvc.GetAccount(c.Request.Context(), src)
	if err != nil {
		response.Error(c, err)
		return
	}
	amount, err := domain.ParseMoney(req.Amount, source.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.transferSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		SourceAccountID:      src,
		DestinationAccountID: dst,
		Amount:               amount,
		Actor:                operator,
		Description:          req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToTransferResponse(result))
}

// Cancel handles POST /api/v1/entries/:id/cancel.
func (h *TransferHandler) Cancel(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CancelRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reversalSvc.Cancel(c.Request.Context(), ports.CancelRequest{
		EntryID: id,
		Reason:  req.Reason,
		Actor:   operator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToCancelResponse(result))
}
