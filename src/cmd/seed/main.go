package main

import (
	"context"
	"flag"
	"log"

	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/config"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/database"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/logging"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	phone := flag.String("phone", "0901234567", "demo user phone number")
	initialPoints := flag.Int("points", 5000, "demo user initial points")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to initialise logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := persistence.AutoMigrate(db); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	result, err := persistence.Seed(context.Background(), db, *phone, *initialPoints)
	if err != nil {
		logger.Fatal("failed to seed", zap.Error(err))
	}

	logger.Info("seeded demo data",
		zap.String("user_id", result.UserID),
		zap.String("stove_id", result.StoveID),
		zap.String("cart_id", result.CartID),
	)
}
