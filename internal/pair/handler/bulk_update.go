package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"tradingpairs/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BulkPriceUpdate struct {
	Label     string           `json:"label" example:"BTC/USDT"`
	Price     decimal.Decimal  `json:"price" example:"68123.45"`
	Volume24h *decimal.Decimal `json:"volume_24h,omitempty" example:"12345678.90"`
	Change24h *decimal.Decimal `json:"change_24h,omitempty" example:"0.34"`
}

type BulkUpdateRequest struct {
	Updates []BulkPriceUpdate `json:"updates"`
}

// BulkUpdate godoc
// @Summary Bulk update prices
// @Description Apply price updates by label, best-effort; unknown labels are skipped
// @Tags TradingPairs
// @Accept json
// @Produce json
// @Param request body BulkUpdateRequest true "Price updates"
// @Success 200 {object} domain.BulkUpdateResult
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /trading-pairs/bulk-update [post]
func (h *Handler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req BulkUpdateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updates := make([]domain.PriceUpdate, 0, len(req.Updates))
	for _, upd := range req.Updates {
		updates = append(updates, domain.PriceUpdate{
			Label:     strings.TrimSpace(upd.Label),
			Price:     upd.Price,
			Volume24h: upd.Volume24h,
			Change24h: upd.Change24h,
		})
	}

	if err := h.validator.ValidateBulkUpdate(updates); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.BulkUpdatePrices(r.Context(), updates)
	if err != nil {
		msg := "failed to bulk update prices"
		logrus.WithError(err).WithField("handler", "BulkUpdate").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
