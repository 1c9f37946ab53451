package handler

import (
	"microfinance-ledger/internal/adapter/http/dto"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// GuaranteeHandler handles the loan guarantee endpoints called by the loan
// application workflow.
type GuaranteeHandler struct {
	ledgerSvc    ports.LedgerService
	guaranteeSvc ports.GuaranteeService
}

// NewGuaranteeHandler creates a new GuaranteeHandler.
func NewGuaranteeHandler(ledgerSvc ports.LedgerService, guaranteeSvc ports.GuaranteeService) *GuaranteeHandler {
	return &GuaranteeHandler{ledgerSvc: ledgerSvc, guaranteeSvc: guaranteeSvc}
}

// Set handles PUT /api/v1/accounts/:id/guarantees.
func (h *GuaranteeHandler) Set(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.GuaranteeRequest
	if !bindJSON(c, &req) {
		return
	}

	acct, err := h.ledgerSvc.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	requested, err := domain.ParseMoney(req.RequestedAmount, acct.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	g, err := h.guaranteeSvc.SetGuarantee(c.Request.Context(), ports.GuaranteeRequest{
		AccountID:         id,
		LoanApplicationID: req.LoanApplicationID,
		LoanType:          domain.LoanType(req.LoanType),
		RequestedAmount:   requested,
		Actor:             operator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToGuaranteeResponse(g))
}

// Release handles DELETE /api/v1/accounts/:id/guarantees/:loanApplicationId.
func (h *GuaranteeHandler) Release(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.guaranteeSvc.ReleaseGuarantee(c.Request.Context(), id, c.Param("loanApplicationId"), operator); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// List handles GET /api/v1/accounts/:id/guarantees.
func (h *GuaranteeHandler) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.guaranteeSvc.ListGuarantees(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.GuaranteeResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.ToGuaranteeResponse(&list[i]))
	}
	response.OK(c, out)
}
