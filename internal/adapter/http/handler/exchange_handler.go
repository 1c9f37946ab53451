package handler

import (
	"microfinance-ledger/internal/adapter/http/dto"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"
	"microfinance-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExchangeHandler publishes and resolves exchange rates.
type ExchangeHandler struct {
	exchangeSvc ports.ExchangeService
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(exchangeSvc ports.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeSvc: exchangeSvc}
}

// Get handles GET /api/v1/exchange-rates?from=HTG&to=USD.
func (h *ExchangeHandler) Get(c *gin.Context) {
	from, err := domain.ParseCurrency(c.Query("from"))
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := domain.ParseCurrency(c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}
	rate, err := h.exchangeSvc.Rate(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExchangeRateResponse{From: string(from), To: string(to), Rate: rate.String()})
}

// Publish handles PUT /api/v1/exchange-rates.
func (h *ExchangeHandler) Publish(c *gin.Context) {
	var req dto.ExchangeRateRequest
	if !bindJSON(c, &req) {
		return
	}
	from, err := domain.ParseCurrency(req.From)
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := domain.ParseCurrency(req.To)
	if err != nil {
		response.Error(c, err)
		return
	}
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		response.Error(c, apperror.Validation("invalid rate"))
		return
	}
	if err := h.exchangeSvc.PublishRate(c.Request.Context(), from, to, rate); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExchangeRateResponse{From: string(from), To: string(to), Rate: rate.String()})
}
