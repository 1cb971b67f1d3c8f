package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tradingpairs/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pairColumns = "id, label, base_currency, quote_currency, price, volume_24h, change_24h, is_active, created_at, updated_at"

// Newest first; id keeps the order deterministic when created_at ties.
const pairOrder = "order by created_at desc, id asc"

type PairRepository struct {
	pool *pgxpool.Pool
}

func (r *PairRepository) FindOne(ctx context.Context, pred domain.Predicate) (*domain.TradingPair, error) {
	where, args := buildWhere(pred)
	q := fmt.Sprintf("select %s from trading_pairs %s", pairColumns, where)

	row := r.pool.QueryRow(ctx, q, args...)
	pair, err := scanPair(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPairNotFound
		}
		return nil, fmt.Errorf("failed to select trading pair: %w", err)
	}
	return pair, nil
}

func (r *PairRepository) FindMany(ctx context.Context, pred domain.Predicate, limit, offset int) ([]domain.TradingPair, error) {
	where, args := buildWhere(pred)

	var sb strings.Builder
	fmt.Fprintf(&sb, "select %s from trading_pairs %s %s", pairColumns, where, pairOrder)
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&sb, " limit $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		fmt.Fprintf(&sb, " offset $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trading pairs: %w", err)
	}
	defer rows.Close()

	pairs := make([]domain.TradingPair, 0, 16)
	for rows.Next() {
		pair, scanErr := scanPair(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan trading pair: %w", scanErr)
		}
		pairs = append(pairs, *pair)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trading pairs: %w", err)
	}
	return pairs, nil
}

func (r *PairRepository) Count(ctx context.Context, pred domain.Predicate) (int64, error) {
	where, args := buildWhere(pred)
	q := "select count(*) from trading_pairs " + where

	var total int64
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count trading pairs: %w", err)
	}
	return total, nil
}

func (r *PairRepository) Insert(ctx context.Context, pair *domain.TradingPair) (*domain.TradingPair, error) {
	const q = `
		insert into trading_pairs (label, base_currency, quote_currency, price, volume_24h, change_24h, is_active)
		values ($1, $2, $3, $4, $5, $6, $7)
		returning ` + pairColumns

	row := r.pool.QueryRow(ctx, q,
		pair.Label,
		pair.BaseCurrency,
		pair.QuoteCurrency,
		pair.Price,
		pair.Volume24h,
		pair.Change24h,
		pair.IsActive,
	)
	stored, err := scanPair(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrLabelExists
		}
		return nil, fmt.Errorf("failed to insert trading pair %q: %w", pair.Label, err)
	}
	return stored, nil
}

func (r *PairRepository) Save(ctx context.Context, pair *domain.TradingPair) (*domain.TradingPair, error) {
	const q = `
		update trading_pairs
		set label = $2, base_currency = $3, quote_currency = $4,
		    price = $5, volume_24h = $6, change_24h = $7,
		    is_active = $8, updated_at = now()
		where id = $1
		returning ` + pairColumns

	row := r.pool.QueryRow(ctx, q,
		pair.ID,
		pair.Label,
		pair.BaseCurrency,
		pair.QuoteCurrency,
		pair.Price,
		pair.Volume24h,
		pair.Change24h,
		pair.IsActive,
	)
	stored, err := scanPair(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPairNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrLabelExists
		}
		return nil, fmt.Errorf("failed to save trading pair %s: %w", pair.ID, err)
	}
	return stored, nil
}

func (r *PairRepository) Remove(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from trading_pairs where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trading pair %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPairNotFound
	}
	return nil
}

// buildWhere turns a predicate into a parameterized WHERE clause. Nil fields
// contribute no condition.
func buildWhere(pred domain.Predicate) (string, []any) {
	conds := make([]string, 0, 5)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, column+" = $"+strconv.Itoa(len(args)))
	}

	if pred.ID != nil {
		add("id", *pred.ID)
	}
	if pred.Label != nil {
		add("label", *pred.Label)
	}
	if pred.BaseCurrency != nil {
		add("base_currency", *pred.BaseCurrency)
	}
	if pred.QuoteCurrency != nil {
		add("quote_currency", *pred.QuoteCurrency)
	}
	if pred.IsActive != nil {
		add("is_active", *pred.IsActive)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "where " + strings.Join(conds, " and "), args
}

func scanPair(row pgx.Row) (*domain.TradingPair, error) {
	var pair domain.TradingPair
	if err := row.Scan(
		&pair.ID,
		&pair.Label,
		&pair.BaseCurrency,
		&pair.QuoteCurrency,
		&pair.Price,
		&pair.Volume24h,
		&pair.Change24h,
		&pair.IsActive,
		&pair.CreatedAt,
		&pair.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pair, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func NewPairRepository(pool *pgxpool.Pool) *PairRepository {
	return &PairRepository{pool: pool}
}
