package pair

import (
	"errors"

	"tradingpairs/internal/domain"
)

var (
	ErrLabelRequired    = errors.New("label is required")
	ErrBaseRequired     = errors.New("base_currency is required")
	ErrQuoteRequired    = errors.New("quote_currency is required")
	ErrNothingToUpdate  = errors.New("no fields to update")
	ErrNegativeLimit    = errors.New("limit must not be negative")
	ErrNegativeOffset   = errors.New("offset must not be negative")
	ErrNoUpdatesInBatch = errors.New("updates list is empty")
)

// Validator performs boundary-level input checks so the service only ever
// sees well-formed requests.
type Validator struct{}

func (v *Validator) ValidateCreate(in domain.CreatePair) error {
	if in.Label == "" {
		return ErrLabelRequired
	}
	if in.BaseCurrency == "" {
		return ErrBaseRequired
	}
	if in.QuoteCurrency == "" {
		return ErrQuoteRequired
	}
	return nil
}

func (v *Validator) ValidatePatch(patch domain.Patch) error {
	if patch.Empty() {
		return ErrNothingToUpdate
	}
	if patch.Label != nil && *patch.Label == "" {
		return ErrLabelRequired
	}
	if patch.BaseCurrency != nil && *patch.BaseCurrency == "" {
		return ErrBaseRequired
	}
	if patch.QuoteCurrency != nil && *patch.QuoteCurrency == "" {
		return ErrQuoteRequired
	}
	return nil
}

func (v *Validator) ValidateFilters(filters domain.Filters) error {
	if filters.Limit != nil && *filters.Limit < 0 {
		return ErrNegativeLimit
	}
	if filters.Offset != nil && *filters.Offset < 0 {
		return ErrNegativeOffset
	}
	return nil
}

func (v *Validator) ValidateBulkUpdate(updates []domain.PriceUpdate) error {
	if len(updates) == 0 {
		return ErrNoUpdatesInBatch
	}
	for _, upd := range updates {
		if upd.Label == "" {
			return ErrLabelRequired
		}
	}
	return nil
}

func NewValidator() *Validator {
	return &Validator{}
}
