package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tradingpairs/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CreatePairRequest struct {
	Label         string           `json:"label" example:"BTC/USDT"`
	BaseCurrency  string           `json:"base_currency" example:"BTC"`
	QuoteCurrency string           `json:"quote_currency" example:"USDT"`
	Price         *decimal.Decimal `json:"price,omitempty" example:"67890.12"`
	Volume24h     *decimal.Decimal `json:"volume_24h,omitempty" example:"12345678.90"`
	Change24h     *decimal.Decimal `json:"change_24h,omitempty" example:"0.89"`
}

// Create godoc
// @Summary Create a trading pair
// @Description Create a new trading pair with a globally unique label
// @Tags TradingPairs
// @Accept json
// @Produce json
// @Param request body CreatePairRequest true "Trading pair to create"
// @Success 201 {object} domain.TradingPair
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "label already exists"
// @Failure 500 {object} errorResponse
// @Router /trading-pairs [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreatePairRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := domain.CreatePair{
		Label:         strings.TrimSpace(req.Label),
		BaseCurrency:  strings.TrimSpace(req.BaseCurrency),
		QuoteCurrency: strings.TrimSpace(req.QuoteCurrency),
		Price:         optionalDecimal(req.Price),
		Volume24h:     optionalDecimal(req.Volume24h),
		Change24h:     optionalDecimal(req.Change24h),
	}

	if err := h.validator.ValidateCreate(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrLabelExists) {
			writeError(w, http.StatusConflict, "trading pair with this label already exists")
			return
		}
		msg := "failed to create trading pair"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Create", "label": in.Label}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func optionalDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
