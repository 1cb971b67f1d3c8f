package main

import (
	"tradingpairs/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Trading Pairs API
// @version 1.0
// @description Record-management service for trading pairs
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("Application failed: %v", err)
	}
}
