package handler

import (
	"errors"
	"net/http"

	"tradingpairs/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetByID godoc
// @Summary Get a trading pair
// @Description Get a single trading pair by its ID
// @Tags TradingPairs
// @Produce json
// @Param id path string true "Trading pair ID"
// @Success 200 {object} domain.TradingPair
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /trading-pairs/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trading pair ID format")
		return
	}

	pair, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPairNotFound) {
			writeError(w, http.StatusNotFound, "trading pair not found")
			return
		}
		msg := "failed to get trading pair"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByID", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}
