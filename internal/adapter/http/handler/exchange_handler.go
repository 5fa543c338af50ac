package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/money"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExchangeHandler exposes the exchange-rate provider.
type ExchangeHandler struct {
	exchangeSvc ports.ExchangeService
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(exchangeSvc ports.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeSvc: exchangeSvc}
}

// Rate handles GET /api/v1/exchange-rates?from=&to=&amount=.
func (h *ExchangeHandler) Rate(c *gin.Context) {
	var q dto.ExchangeRateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	from := money.NormalizeCurrency(q.From)
	to := money.NormalizeCurrency(q.To)

	rate, err := h.exchangeSvc.Rate(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	resp := dto.ExchangeRateResponse{From: from, To: to, Rate: rate}

	if q.Amount != "" {
		amount, err := decimal.NewFromString(q.Amount)
		if err != nil {
			response.Error(c, apperror.Validation("invalid amount"))
			return
		}
		converted, err := h.exchangeSvc.Convert(c.Request.Context(), amount, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		resp.Amount = &amount
		resp.Converted = &converted
	}
	response.OK(c, resp)
}

// Currencies handles GET /api/v1/currencies.
func (h *ExchangeHandler) Currencies(c *gin.Context) {
	codes, err := h.exchangeSvc.Currencies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CurrenciesResponse{Currencies: codes})
}
