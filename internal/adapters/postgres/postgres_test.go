package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"tradingpairs/internal/adapters/postgres"
	"tradingpairs/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.Exec(ctx, `truncate table trading_pairs`)
	require.NoError(t, err)

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func insertPair(t *testing.T, repo *postgres.PairRepository, label, base, quote string, active bool) *domain.TradingPair {
	t.Helper()
	stored, err := repo.Insert(context.Background(), &domain.TradingPair{
		Label:         label,
		BaseCurrency:  base,
		QuoteCurrency: quote,
		IsActive:      active,
	})
	require.NoError(t, err)
	return stored
}

func setCreatedAt(t *testing.T, pool *pgxpool.Pool, id uuid.UUID, at time.Time) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`update trading_pairs set created_at = $2, updated_at = $2 where id = $1`, id, at)
	require.NoError(t, err)
}

// ---------- FindOne ----------

func TestPairRepository_FindOne_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)

	_, err := repo.FindOne(context.Background(), domain.ByLabel("ETH/USDT"))
	require.ErrorIs(t, err, domain.ErrPairNotFound)
}

func TestPairRepository_FindOne_ByLabelAndByID(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)
	ctx := context.Background()

	stored := insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)

	byLabel, err := repo.FindOne(ctx, domain.ByLabel("ETH/USDT"))
	require.NoError(t, err)
	require.Equal(t, stored.ID, byLabel.ID)

	byID, err := repo.FindOne(ctx, domain.ByID(stored.ID))
	require.NoError(t, err)
	require.Equal(t, "ETH/USDT", byID.Label)
}

func TestPairRepository_FindOne_LabelMatchIsCaseSensitive(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)

	insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)

	_, err := repo.FindOne(context.Background(), domain.ByLabel("eth/usdt"))
	require.ErrorIs(t, err, domain.ErrPairNotFound)
}

// ---------- Insert ----------

func TestPairRepository_Insert_GeneratesIDAndTimestamps(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)

	price := decimal.NewNullDecimal(decimal.RequireFromString("3456.78"))
	stored, err := repo.Insert(context.Background(), &domain.TradingPair{
		Label:         "ETH/USDT",
		BaseCurrency:  "ETH",
		QuoteCurrency: "USDT",
		Price:         price,
		IsActive:      true,
	})

	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, stored.ID)
	require.True(t, stored.CreatedAt.Equal(stored.UpdatedAt))
	require.True(t, stored.Price.Valid)
	require.True(t, stored.Price.Decimal.Equal(price.Decimal))
	require.False(t, stored.Volume24h.Valid)
}

func TestPairRepository_Insert_DuplicateLabel(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)

	insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)

	// the unique index catches what the service-level check cannot under
	// concurrent writers
	_, err := repo.Insert(context.Background(), &domain.TradingPair{
		Label:         "ETH/USDT",
		BaseCurrency:  "ETH",
		QuoteCurrency: "USDT",
		IsActive:      true,
	})
	require.ErrorIs(t, err, domain.ErrLabelExists)

	total, err := repo.Count(context.Background(), domain.Predicate{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

// ---------- FindMany / Count ----------

func TestPairRepository_FindMany_FiltersAndOrder(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)
	ctx := context.Background()

	older := insertPair(t, repo, "BTC/USDT", "BTC", "USDT", true)
	newer := insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)
	inactive := insertPair(t, repo, "SOL/USDT", "SOL", "USDT", false)
	insertPair(t, repo, "ETH/EUR", "ETH", "EUR", true)

	base := time.Now().UTC().Truncate(time.Second)
	setCreatedAt(t, pool, older.ID, base.Add(-2*time.Hour))
	setCreatedAt(t, pool, newer.ID, base.Add(-1*time.Hour))
	setCreatedAt(t, pool, inactive.ID, base.Add(-30*time.Minute))

	quote := "USDT"
	active := true
	pred := domain.Predicate{QuoteCurrency: &quote, IsActive: &active}

	items, err := repo.FindMany(ctx, pred, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// newest first
	require.Equal(t, newer.ID, items[0].ID)
	require.Equal(t, older.ID, items[1].ID)

	total, err := repo.Count(ctx, pred)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
}

func TestPairRepository_FindMany_Pagination(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	labels := []string{"A/USDT", "B/USDT", "C/USDT", "D/USDT", "E/USDT"}
	for i, label := range labels {
		stored := insertPair(t, repo, label, label[:1], "USDT", true)
		setCreatedAt(t, pool, stored.ID, base.Add(time.Duration(i)*time.Minute))
	}

	// total=5, limit=2, offset=4 leaves exactly one row
	items, err := repo.FindMany(ctx, domain.Predicate{}, 2, 4)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "A/USDT", items[0].Label)

	items, err = repo.FindMany(ctx, domain.Predicate{}, 2, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "E/USDT", items[0].Label)
	require.Equal(t, "D/USDT", items[1].Label)
}

func TestPairRepository_FindMany_NoFiltersMeansAll(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)

	insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)
	insertPair(t, repo, "SOL/USDT", "SOL", "USDT", false)

	items, err := repo.FindMany(context.Background(), domain.Predicate{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

// ---------- Save ----------

func TestPairRepository_Save_RefreshesUpdatedAt(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)
	ctx := context.Background()

	stored := insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)
	setCreatedAt(t, pool, stored.ID, time.Now().UTC().Add(-time.Hour))
	before, err := repo.FindOne(ctx, domain.ByID(stored.ID))
	require.NoError(t, err)

	before.Price = decimal.NewNullDecimal(decimal.RequireFromString("3500.00"))
	saved, err := repo.Save(ctx, before)
	require.NoError(t, err)

	require.True(t, saved.Price.Decimal.Equal(decimal.RequireFromString("3500.00")))
	require.Equal(t, "ETH/USDT", saved.Label)
	require.True(t, saved.UpdatedAt.After(before.UpdatedAt))
	require.True(t, saved.CreatedAt.Equal(before.CreatedAt))
}

func TestPairRepository_Save_MissingRow(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)

	_, err := repo.Save(context.Background(), &domain.TradingPair{
		ID:            uuid.New(),
		Label:         "GHOST/USDT",
		BaseCurrency:  "GHOST",
		QuoteCurrency: "USDT",
	})
	require.ErrorIs(t, err, domain.ErrPairNotFound)
}

func TestPairRepository_Save_LabelCollision(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)
	ctx := context.Background()

	insertPair(t, repo, "BTC/USDT", "BTC", "USDT", true)
	victim := insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)

	victim.Label = "BTC/USDT"
	_, err := repo.Save(ctx, victim)
	require.ErrorIs(t, err, domain.ErrLabelExists)

	// prior state unchanged
	kept, err := repo.FindOne(ctx, domain.ByID(victim.ID))
	require.NoError(t, err)
	require.Equal(t, "ETH/USDT", kept.Label)
}

// ---------- Remove ----------

func TestPairRepository_Remove(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewPairRepository(pool)
	ctx := context.Background()

	stored := insertPair(t, repo, "ETH/USDT", "ETH", "USDT", true)

	require.NoError(t, repo.Remove(ctx, stored.ID))

	_, err := repo.FindOne(ctx, domain.ByID(stored.ID))
	require.ErrorIs(t, err, domain.ErrPairNotFound)

	require.ErrorIs(t, repo.Remove(ctx, stored.ID), domain.ErrPairNotFound)
}
