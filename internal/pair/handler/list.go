package handler

import (
	"net/http"
	"strconv"

	"tradingpairs/internal/domain"

	"github.com/sirupsen/logrus"
)

// List godoc
// @Summary List trading pairs
// @Description List trading pairs with optional exact-match filters and pagination
// @Tags TradingPairs
// @Produce json
// @Param base_currency query string false "Filter by base currency"
// @Param quote_currency query string false "Filter by quote currency"
// @Param is_active query boolean false "Filter by active flag"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} domain.Page
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /trading-pairs [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.validator.ValidateFilters(filters); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.FindAll(r.Context(), filters)
	if err != nil {
		msg := "failed to list trading pairs"
		logrus.WithError(err).WithField("handler", "List").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func parseFilters(r *http.Request) (domain.Filters, error) {
	var filters domain.Filters
	query := r.URL.Query()

	if v := query.Get("base_currency"); v != "" {
		filters.BaseCurrency = &v
	}
	if v := query.Get("quote_currency"); v != "" {
		filters.QuoteCurrency = &v
	}
	if v := query.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return domain.Filters{}, errBadBoolParam("is_active")
		}
		filters.IsActive = &active
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return domain.Filters{}, errBadIntParam("limit")
		}
		filters.Limit = &limit
	}
	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return domain.Filters{}, errBadIntParam("offset")
		}
		filters.Offset = &offset
	}

	return filters, nil
}
