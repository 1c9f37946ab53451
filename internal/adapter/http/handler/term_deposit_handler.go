package handler

import (
	"time"

	"microfinance-ledger/internal/adapter/http/dto"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"
	"microfinance-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TermDepositHandler handles term deposits, interest accrual and the loan
// calculator.
type TermDepositHandler struct {
	interestSvc ports.InterestService
}

// NewTermDepositHandler creates a new TermDepositHandler.
func NewTermDepositHandler(interestSvc ports.InterestService) *TermDepositHandler {
	return &TermDepositHandler{interestSvc: interestSvc}
}

// Open handles POST /api/v1/term-deposits.
func (h *TermDepositHandler) Open(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	var req dto.OpenTermDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	principal, err := domain.ParseMoney(req.Principal, currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	monthly, err := dto.ParseRate(req.MonthlyRate)
	if err != nil {
		response.Error(c, err)
		return
	}
	annual, err := dto.ParseRate(req.AnnualRate)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.interestSvc.OpenTermDeposit(c.Request.Context(), ports.OpenTermDepositRequest{
		CustomerID:  req.CustomerID,
		Currency:    currency,
		Principal:   principal.Amount,
		TermMonths:  req.TermMonths,
		MonthlyRate: monthly,
		AnnualRate:  annual,
		Actor:       operator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToTermDepositResponse(view))
}

// Get handles GET /api/v1/term-deposits/:id.
func (h *TermDepositHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.interestSvc.GetTermDeposit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToTermDepositResponse(view))
}

// Accrue handles POST /api/v1/term-deposits/:id/accrue.
func (h *TermDepositHandler) Accrue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	interest, err := h.interestSvc.CalculateInterest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AccrualResponse{
		AccountID: id.String(),
		Interest:  domain.FormatMinor(interest.Amount),
		Currency:  string(interest.Currency),
	})
}

// AccrueAll handles POST /api/v1/interest/accrue-all.
func (h *TermDepositHandler) AccrueAll(c *gin.Context) {
	n, err := h.interestSvc.CalculateInterestForAllAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AccrueAllResponse{Processed: n})
}

// Renew handles POST /api/v1/term-deposits/:id/renew.
func (h *TermDepositHandler) Renew(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RenewRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.interestSvc.Renew(c.Request.Context(), ports.RenewRequest{
		AccountID:  id,
		TermMonths: req.TermMonths,
		Actor:      operator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToTermDepositResponse(view))
}

// Close handles POST /api/v1/term-deposits/:id/close.
func (h *TermDepositHandler) Close(c *gin.Context) {
	operator, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CloseTermDepositRequest
	if !bindJSON(c, &req) {
		return
	}
	penalty, err := dto.ParseRate(req.PenaltyRate)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.interestSvc.CloseTermDeposit(c.Request.Context(), ports.CloseTermDepositRequest{
		AccountID:   id,
		PenaltyRate: penalty,
		Actor:       operator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToTermCloseResponse(result))
}

// QuoteLoan handles POST /api/v1/loans/quote.
func (h *TermDepositHandler) QuoteLoan(c *gin.Context) {
	var req dto.LoanQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	currency := domain.CurrencyHTG
	if req.Currency != "" {
		var err error
		if currency, err = domain.ParseCurrency(req.Currency); err != nil {
			response.Error(c, err)
			return
		}
	}
	principal, err := domain.ParseMoney(req.Principal, currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	rate, err := decimal.NewFromString(req.MonthlyRate)
	if err != nil {
		response.Error(c, apperror.Validation("invalid monthly_rate"))
		return
	}
	var start time.Time
	if req.StartDate != "" {
		if start, err = time.Parse("2006-01-02", req.StartDate); err != nil {
			response.Error(c, apperror.Validation("invalid start_date"))
			return
		}
	}

	quote, err := h.interestSvc.QuoteLoan(ports.LoanQuoteRequest{
		Principal:   principal.Amount,
		MonthlyRate: rate,
		Months:      req.Months,
		Start:       start,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToLoanQuoteResponse(quote, currency))
}
