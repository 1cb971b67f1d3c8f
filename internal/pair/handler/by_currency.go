package handler

import (
	"net/http"
	"strings"

	"tradingpairs/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ByCurrencyResponse struct {
	Items []domain.TradingPair `json:"items"`
}

// ListByBase godoc
// @Summary List active pairs by base currency
// @Description List all active trading pairs with the given base currency, newest first
// @Tags TradingPairs
// @Produce json
// @Param code path string true "Base currency code"
// @Success 200 {object} ByCurrencyResponse
// @Failure 500 {object} errorResponse
// @Router /trading-pairs/by-base/{code} [get]
func (h *Handler) ListByBase(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))

	items, err := h.service.FindByBaseCurrency(r.Context(), code)
	if err != nil {
		msg := "failed to list trading pairs by base currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListByBase", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, ByCurrencyResponse{Items: items})
}

// ListByQuote godoc
// @Summary List active pairs by quote currency
// @Description List all active trading pairs with the given quote currency, newest first
// @Tags TradingPairs
// @Produce json
// @Param code path string true "Quote currency code"
// @Success 200 {object} ByCurrencyResponse
// @Failure 500 {object} errorResponse
// @Router /trading-pairs/by-quote/{code} [get]
func (h *Handler) ListByQuote(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))

	items, err := h.service.FindByQuoteCurrency(r.Context(), code)
	if err != nil {
		msg := "failed to list trading pairs by quote currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListByQuote", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, ByCurrencyResponse{Items: items})
}
