package handler

import (
	"context"
	"strings"

	"microfinance-ledger/internal/adapter/http/dto"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"
	"microfinance-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account lifecycle and cash movements.
type AccountHandler struct {
	ledgerSvc ports.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledgerSvc ports.LedgerService) *AccountHandler {
	return &AccountHandler{ledgerSvc: ledgerSvc}
}

// Open handles POST /api/v1/accounts.
func (h *AccountHandler) Open(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	var req dto.OpenAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	var initial int64
	if req.InitialDeposit != "" {
		m, err := domain.ParseMoney(req.InitialDeposit, currency)
		if err != nil {
			response.Error(c, err)
			return
		}
		initial = m.Amount
	}

	acct, err := h.ledgerSvc.OpenAccount(c.Request.Context(), ports.OpenAccountRequest{
		CustomerID:      req.CustomerID,
		Type:            domain.AccountType(req.Type),
		Currency:        currency,
		InitialDeposit:  initial,
		RequireApproval: req.RequireApproval,
		Actor:           operator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToAccountResponse(acct))
}

// Get handles GET /api/v1/accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	acct, err := h.ledgerSvc.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAccountResponse(acct))
}

// Lookup handles GET /api/v1/accounts?number=G12345678901.
func (h *AccountHandler) Lookup(c *gin.Context) {
	number := strings.TrimSpace(c.Query("number"))
	if number == "" {
		response.Error(c, apperror.Validation("number query parameter is required"))
		return
	}
	acct, err := h.ledgerSvc.GetAccountByNumber(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAccountResponse(acct))
}

// Entries handles GET /api/v1/accounts/:id/entries.
func (h *AccountHandler) Entries(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entries, err := h.ledgerSvc.ListEntries(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToEntryList(entries))
}

// Deposit handles POST /api/v1/accounts/:id/deposits.
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.move(c, h.ledgerSvc.Deposit)
}

// Withdraw handles POST /api/v1/accounts/:id/withdrawals.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.move(c, h.ledgerSvc.Withdraw)
}

type movementFunc func(ctx context.Context, req ports.MovementRequest) (*domain.Entry, error)

func (h *AccountHandler) move(c *gin.Context, fn movementFunc) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MovementRequest
	if !bindJSON(c, &req) {
		return
	}

	// The amount is read in the account currency.
	acct, err := h.ledgerSvc.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	amount, err := domain.ParseMoney(req.Amount, acct.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := fn(c.Request.Context(), ports.MovementRequest{
		AccountID:   id,
		Amount:      amount,
		Actor:       operator,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToEntryResponse(entry))
}

// SetStatus handles PUT /api/v1/accounts/:id/status.
func (h *AccountHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	acct, err := h.ledgerSvc.SetStatus(c.Request.Context(), id, domain.AccountStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAccountResponse(acct))
}

// Close handles POST /api/v1/accounts/:id/close.
func (h *AccountHandler) Close(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	acct, err := h.ledgerSvc.CloseAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAccountResponse(acct))
}

// Reconcile handles GET /api/v1/accounts/:id/reconciliation.
func (h *AccountHandler) Reconcile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rec, err := h.ledgerSvc.ReconcileAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAccountReconciliation(rec))
}
