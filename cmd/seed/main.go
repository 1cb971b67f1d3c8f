package main

import (
	"context"
	"os"
	"time"

	"tradingpairs/internal/adapters/postgres"
	"tradingpairs/internal/config"
	"tradingpairs/internal/domain"
	"tradingpairs/internal/platform/db"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Seeds the trading_pairs table with a starter set, replacing whatever is
// there. Intended for local development only.
func main() {
	logrus.SetOutput(os.Stdout)

	appCfg, err := config.Init()
	if err != nil {
		logrus.Fatalf("Config initialization failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.CreatePoolAndPing(ctx, appCfg.DbServer)
	if err != nil {
		logrus.Fatalf("Error connecting to db: %v", err)
	}
	defer pool.Close()

	if _, err = pool.Exec(ctx, `truncate table trading_pairs`); err != nil {
		logrus.Fatalf("Failed to clear trading_pairs: %v", err)
	}
	logrus.Info("Existing trading pairs cleared")

	repo := postgres.NewPairRepository(pool)
	for _, seed := range seedPairs() {
		stored, insertErr := repo.Insert(ctx, &seed)
		if insertErr != nil {
			logrus.Fatalf("Failed to seed %s: %v", seed.Label, insertErr)
		}
		logrus.Infof("Created %s (id %s)", stored.Label, stored.ID)
	}
	logrus.Infof("Successfully seeded %d trading pairs", len(seedPairs()))
}

func seedPairs() []domain.TradingPair {
	return []domain.TradingPair{
		makePair("BNB/USDT", "BNB", "USDT", "612.50", "1234567.89", "2.35"),
		makePair("ETH/USDT", "ETH", "USDT", "3456.78", "9876543.21", "-1.24"),
		makePair("SOL/USDT", "SOL", "USDT", "145.67", "543210.98", "5.67"),
		makePair("BTC/USDT", "BTC", "USDT", "67890.12", "12345678.90", "0.89"),
		makePair("ADA/USDT", "ADA", "USDT", "0.65", "234567.89", "-0.45"),
	}
}

func makePair(label, base, quote, price, volume, change string) domain.TradingPair {
	return domain.TradingPair{
		Label:         label,
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Price:         decimal.NewNullDecimal(decimal.RequireFromString(price)),
		Volume24h:     decimal.NewNullDecimal(decimal.RequireFromString(volume)),
		Change24h:     decimal.NewNullDecimal(decimal.RequireFromString(change)),
		IsActive:      true,
	}
}
