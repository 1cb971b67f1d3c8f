package adapters

import (
	"context"
	"tradingpairs/internal/domain"

	"github.com/google/uuid"
)

// PairRepository is the persistence boundary for trading pairs. The service
// layer composes domain.Predicate values and never sees the storage engine.
type PairRepository interface {
	// FindOne returns the single record matching the predicate, or
	// domain.ErrPairNotFound.
	FindOne(ctx context.Context, pred domain.Predicate) (*domain.TradingPair, error)
	// FindMany returns matching records ordered by created_at descending
	// with id as a stable tiebreak. limit <= 0 means no limit.
	FindMany(ctx context.Context, pred domain.Predicate, limit, offset int) ([]domain.TradingPair, error)
	// Count returns the number of matching records ignoring pagination.
	Count(ctx context.Context, pred domain.Predicate) (int64, error)
	// Insert persists a new record and returns it with the generated id and
	// timestamps. A duplicate label surfaces as domain.ErrLabelExists.
	Insert(ctx context.Context, pair *domain.TradingPair) (*domain.TradingPair, error)
	// Save replaces all mutable fields of an existing record and refreshes
	// updated_at. Returns domain.ErrPairNotFound if the id is gone and
	// domain.ErrLabelExists if the label collides.
	Save(ctx context.Context, pair *domain.TradingPair) (*domain.TradingPair, error)
	// Remove deletes the record permanently, domain.ErrPairNotFound if absent.
	Remove(ctx context.Context, id uuid.UUID) error
}
