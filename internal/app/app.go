package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradingpairs/internal/adapters/postgres"
	"tradingpairs/internal/api"
	"tradingpairs/internal/config"
	"tradingpairs/internal/pair"
	"tradingpairs/internal/pair/handler"
	"tradingpairs/internal/platform/db"
	httpserver "tradingpairs/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and starts the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool — the single long-lived storage handle, passed explicitly into
	// the repository rather than reached through global state.
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Repository
	pairRepo := postgres.NewPairRepository(pool)

	// Service
	pairService := pair.NewService(pairRepo)
	pairValidator := pair.NewValidator()

	// Handlers and router
	pairHandler := handler.NewPairHandler(pairValidator, pairService)
	router := api.NewRouter(pairHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
