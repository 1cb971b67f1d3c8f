package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"tradingpairs/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// UpdatePairRequest is a partial update: omitted fields keep their current
// values.
type UpdatePairRequest struct {
	Label         *string          `json:"label,omitempty" example:"BTC/USDT"`
	BaseCurrency  *string          `json:"base_currency,omitempty" example:"BTC"`
	QuoteCurrency *string          `json:"quote_currency,omitempty" example:"USDT"`
	Price         *decimal.Decimal `json:"price,omitempty" example:"3500.00"`
	Volume24h     *decimal.Decimal `json:"volume_24h,omitempty" example:"9876543.21"`
	Change24h     *decimal.Decimal `json:"change_24h,omitempty" example:"-1.24"`
	IsActive      *bool            `json:"is_active,omitempty" example:"true"`
}

// Update godoc
// @Summary Update a trading pair
// @Description Apply a partial update to an existing trading pair
// @Tags TradingPairs
// @Accept json
// @Produce json
// @Param id path string true "Trading pair ID"
// @Param request body UpdatePairRequest true "Fields to update"
// @Success 200 {object} domain.TradingPair
// @Failure 400 {object} errorResponse "invalid body or nothing to update"
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse "label already exists"
// @Failure 500 {object} errorResponse
// @Router /trading-pairs/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trading pair ID format")
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req UpdatePairRequest
	if err = dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.Patch{
		Label:         req.Label,
		BaseCurrency:  req.BaseCurrency,
		QuoteCurrency: req.QuoteCurrency,
		IsActive:      req.IsActive,
	}
	if req.Price != nil {
		price := decimal.NewNullDecimal(*req.Price)
		patch.Price = &price
	}
	if req.Volume24h != nil {
		volume := decimal.NewNullDecimal(*req.Volume24h)
		patch.Volume24h = &volume
	}
	if req.Change24h != nil {
		change := decimal.NewNullDecimal(*req.Change24h)
		patch.Change24h = &change
	}

	if err = h.validator.ValidatePatch(patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrPairNotFound) {
			writeError(w, http.StatusNotFound, "trading pair not found")
			return
		}
		if errors.Is(err, domain.ErrLabelExists) {
			writeError(w, http.StatusConflict, "trading pair with this label already exists")
			return
		}
		msg := "failed to update trading pair"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Update", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
