package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tradingpairs/internal/domain"

	"github.com/google/uuid"
)

type PairValidator interface {
	ValidateCreate(in domain.CreatePair) error
	ValidatePatch(patch domain.Patch) error
	ValidateFilters(filters domain.Filters) error
	ValidateBulkUpdate(updates []domain.PriceUpdate) error
}

type PairService interface {
	Create(ctx context.Context, in domain.CreatePair) (*domain.TradingPair, error)
	FindAll(ctx context.Context, filters domain.Filters) (*domain.Page, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TradingPair, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (*domain.TradingPair, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByBaseCurrency(ctx context.Context, code string) ([]domain.TradingPair, error)
	FindByQuoteCurrency(ctx context.Context, code string) ([]domain.TradingPair, error)
	BulkUpdatePrices(ctx context.Context, updates []domain.PriceUpdate) (*domain.BulkUpdateResult, error)
}

type Handler struct {
	validator PairValidator
	service   PairService
}

func NewPairHandler(validator PairValidator, service PairService) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func errBadIntParam(name string) error {
	return fmt.Errorf("query parameter %q must be an integer", name)
}

func errBadBoolParam(name string) error {
	return fmt.Errorf("query parameter %q must be a boolean", name)
}
