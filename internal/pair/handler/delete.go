package handler

import (
	"errors"
	"net/http"

	"tradingpairs/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Delete godoc
// @Summary Delete a trading pair
// @Description Permanently delete a trading pair by its ID
// @Tags TradingPairs
// @Produce json
// @Param id path string true "Trading pair ID"
// @Success 204 "deleted"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /trading-pairs/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trading pair ID format")
		return
	}

	if err = h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPairNotFound) {
			writeError(w, http.StatusNotFound, "trading pair not found")
			return
		}
		msg := "failed to delete trading pair"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
