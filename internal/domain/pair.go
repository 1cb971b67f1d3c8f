package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradingPair struct {
	ID            uuid.UUID           `json:"id"`
	Label         string              `json:"label"`
	BaseCurrency  string              `json:"base_currency"`
	QuoteCurrency string              `json:"quote_currency"`
	Price         decimal.NullDecimal `json:"price"`
	Volume24h     decimal.NullDecimal `json:"volume_24h"`
	Change24h     decimal.NullDecimal `json:"change_24h"`
	IsActive      bool                `json:"is_active"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Predicate selects records by exact field match. A nil field imposes no
// constraint, which is not the same as matching an empty value.
type Predicate struct {
	ID            *uuid.UUID
	Label         *string
	BaseCurrency  *string
	QuoteCurrency *string
	IsActive      *bool
}

func ByID(id uuid.UUID) Predicate    { return Predicate{ID: &id} }
func ByLabel(label string) Predicate { return Predicate{Label: &label} }

// CreatePair carries the fields accepted when creating a new pair.
// is_active is not part of it; new pairs always start active.
type CreatePair struct {
	Label         string
	BaseCurrency  string
	QuoteCurrency string
	Price         decimal.NullDecimal
	Volume24h     decimal.NullDecimal
	Change24h     decimal.NullDecimal
}

// Patch is a partial update: nil fields are left untouched. Numeric fields
// are doubly optional so "don't touch price" and "set price to null" stay
// distinguishable.
type Patch struct {
	Label         *string
	BaseCurrency  *string
	QuoteCurrency *string
	Price         *decimal.NullDecimal
	Volume24h     *decimal.NullDecimal
	Change24h     *decimal.NullDecimal
	IsActive      *bool
}

// Empty reports whether the patch touches no fields at all.
func (p Patch) Empty() bool {
	return p.Label == nil && p.BaseCurrency == nil && p.QuoteCurrency == nil &&
		p.Price == nil && p.Volume24h == nil && p.Change24h == nil && p.IsActive == nil
}

// Filters narrows and paginates a listing. Limit/Offset of nil fall back to
// the service defaults.
type Filters struct {
	BaseCurrency  *string
	QuoteCurrency *string
	IsActive      *bool
	Limit         *int
	Offset        *int
}

type Page struct {
	Items   []TradingPair `json:"items"`
	Total   int64         `json:"total"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	HasMore bool          `json:"has_more"`
}

// PriceUpdate is one entry of a bulk price refresh, matched by label.
type PriceUpdate struct {
	Label     string
	Price     decimal.Decimal
	Volume24h *decimal.Decimal
	Change24h *decimal.Decimal
}

// BulkUpdateResult reports how a best-effort batch went: Applied counts the
// entries persisted, Failed lists labels whose write errored. Entries whose
// label matched nothing appear in neither.
type BulkUpdateResult struct {
	Applied int      `json:"applied"`
	Failed  []string `json:"failed,omitempty"`
}
