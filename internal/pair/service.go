package pair

import (
	"context"
	"errors"
	"fmt"

	"tradingpairs/internal/adapters"
	"tradingpairs/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLimit  = 50
	DefaultOffset = 0
)

// Service holds all business logic for trading pairs: label uniqueness,
// filtered listing with pagination, partial updates and hard deletes. It is
// stateless; all durable state lives behind adapters.PairRepository.
type Service struct {
	repo adapters.PairRepository
}

// Create stores a new pair after checking that no record already holds its
// label. The check-then-insert sequence is not atomic, so a concurrent
// duplicate is still rejected by the storage unique index and surfaces as
// domain.ErrLabelExists either way.
func (s *Service) Create(ctx context.Context, in domain.CreatePair) (*domain.TradingPair, error) {
	// The boundary validates input; an empty label here is an invariant
	// violation, not a user error.
	if in.Label == "" {
		return nil, fmt.Errorf("create trading pair: label must not be empty")
	}

	_, err := s.repo.FindOne(ctx, domain.ByLabel(in.Label))
	if err == nil {
		return nil, domain.ErrLabelExists
	}
	if !errors.Is(err, domain.ErrPairNotFound) {
		return nil, fmt.Errorf("failed to check label %q: %w", in.Label, err)
	}

	pair := &domain.TradingPair{
		Label:         in.Label,
		BaseCurrency:  in.BaseCurrency,
		QuoteCurrency: in.QuoteCurrency,
		Price:         in.Price,
		Volume24h:     in.Volume24h,
		Change24h:     in.Change24h,
		IsActive:      true,
	}
	return s.repo.Insert(ctx, pair)
}

// FindAll lists pairs under the given filters. Each provided filter is an
// exact-match AND predicate; Total counts all matches ignoring pagination.
func (s *Service) FindAll(ctx context.Context, filters domain.Filters) (*domain.Page, error) {
	limit := DefaultLimit
	if filters.Limit != nil {
		limit = *filters.Limit
	}
	offset := DefaultOffset
	if filters.Offset != nil {
		offset = *filters.Offset
	}

	pred := domain.Predicate{
		BaseCurrency:  filters.BaseCurrency,
		QuoteCurrency: filters.QuoteCurrency,
		IsActive:      filters.IsActive,
	}

	total, err := s.repo.Count(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("failed to count trading pairs: %w", err)
	}

	items, err := s.repo.FindMany(ctx, pred, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list trading pairs: %w", err)
	}

	return &domain.Page{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(items)) < total,
	}, nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*domain.TradingPair, error) {
	return s.repo.FindOne(ctx, domain.ByID(id))
}

// Update merges the provided patch fields into an existing pair. A label
// change re-runs the uniqueness check against other records; renaming a pair
// to its own current label is a no-op, not a conflict.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (*domain.TradingPair, error) {
	pair, err := s.repo.FindOne(ctx, domain.ByID(id))
	if err != nil {
		return nil, err
	}

	if patch.Label != nil && *patch.Label != pair.Label {
		other, lookupErr := s.repo.FindOne(ctx, domain.ByLabel(*patch.Label))
		if lookupErr == nil && other.ID != pair.ID {
			return nil, domain.ErrLabelExists
		}
		if lookupErr != nil && !errors.Is(lookupErr, domain.ErrPairNotFound) {
			return nil, fmt.Errorf("failed to check label %q: %w", *patch.Label, lookupErr)
		}
	}

	applyPatch(pair, patch)
	return s.repo.Save(ctx, pair)
}

// Delete removes a pair permanently. Deactivating via is_active=false is a
// separate, reversible state and goes through Update instead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindOne(ctx, domain.ByID(id)); err != nil {
		return err
	}
	return s.repo.Remove(ctx, id)
}

// FindByBaseCurrency returns all active pairs with the given base currency,
// newest first. Unpaginated; meant for small result sets.
func (s *Service) FindByBaseCurrency(ctx context.Context, code string) ([]domain.TradingPair, error) {
	active := true
	return s.repo.FindMany(ctx, domain.Predicate{BaseCurrency: &code, IsActive: &active}, 0, 0)
}

// FindByQuoteCurrency returns all active pairs with the given quote currency,
// newest first. Unpaginated; meant for small result sets.
func (s *Service) FindByQuoteCurrency(ctx context.Context, code string) ([]domain.TradingPair, error) {
	active := true
	return s.repo.FindMany(ctx, domain.Predicate{QuoteCurrency: &code, IsActive: &active}, 0, 0)
}

// BulkUpdatePrices applies a batch of price refreshes matched by label.
// Best-effort: unknown labels are skipped silently, storage failures are
// logged and collected without aborting the remaining entries.
func (s *Service) BulkUpdatePrices(ctx context.Context, updates []domain.PriceUpdate) (*domain.BulkUpdateResult, error) {
	result := &domain.BulkUpdateResult{}

	for _, upd := range updates {
		pair, err := s.repo.FindOne(ctx, domain.ByLabel(upd.Label))
		if err != nil {
			if errors.Is(err, domain.ErrPairNotFound) {
				continue
			}
			logrus.WithError(err).WithField("label", upd.Label).Warn("Bulk price update: lookup failed")
			result.Failed = append(result.Failed, upd.Label)
			continue
		}

		pair.Price = decimal.NewNullDecimal(upd.Price)
		if upd.Volume24h != nil {
			pair.Volume24h = decimal.NewNullDecimal(*upd.Volume24h)
		}
		if upd.Change24h != nil {
			pair.Change24h = decimal.NewNullDecimal(*upd.Change24h)
		}

		if _, err = s.repo.Save(ctx, pair); err != nil {
			logrus.WithError(err).WithField("label", upd.Label).Warn("Bulk price update: save failed")
			result.Failed = append(result.Failed, upd.Label)
			continue
		}
		result.Applied++
	}

	return result, nil
}

func applyPatch(pair *domain.TradingPair, patch domain.Patch) {
	if patch.Label != nil {
		pair.Label = *patch.Label
	}
	if patch.BaseCurrency != nil {
		pair.BaseCurrency = *patch.BaseCurrency
	}
	if patch.QuoteCurrency != nil {
		pair.QuoteCurrency = *patch.QuoteCurrency
	}
	if patch.Price != nil {
		pair.Price = *patch.Price
	}
	if patch.Volume24h != nil {
		pair.Volume24h = *patch.Volume24h
	}
	if patch.Change24h != nil {
		pair.Change24h = *patch.Change24h
	}
	if patch.IsActive != nil {
		pair.IsActive = *patch.IsActive
	}
}

func NewService(repo adapters.PairRepository) *Service {
	return &Service{repo: repo}
}
