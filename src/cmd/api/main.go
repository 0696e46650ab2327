package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	orderapp "github.com/jackyeh168/gas_shop/src/internal/application/order"
	pointsapp "github.com/jackyeh168/gas_shop/src/internal/application/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/config"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/database"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/events"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/lock"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/logging"
	"github.com/jackyeh168/gas_shop/src/internal/infrastructure/persistence"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/handler"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
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

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		return err
	}
	if err := persistence.AutoMigrate(db); err != nil {
		return err
	}

	var (
		checkoutLock orderapp.CheckoutLock
		publisher    shared.EventPublisher = events.NewZapEventPublisher(logger)
	)
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return err
		}

		checkoutLock = lock.NewRedisCheckoutLock(client, cfg.Redis.LockTTL, logger)
		publisher = events.NewMultiPublisher(publisher, events.NewRedisEventPublisher(client, ""))
		logger.Info("redis enabled", zap.String("addr", cfg.Redis.Addr))
	}

	orders := persistence.NewOrderRepository(db)
	ledger := persistence.NewPointLedger(db)
	txManager := persistence.NewGORMTransactionManager(db)

	orderHandler := handler.NewOrderHandler(
		orderapp.NewCreateOrderUseCase(persistence.NewCheckoutRepository(db), orders, ledger, txManager, publisher, checkoutLock, logger),
		orderapp.NewChangeOrderStatusUseCase(orders, ledger, txManager, publisher, logger),
		orderapp.NewGetOrderUseCase(orders),
	)
	pointsHandler := handler.NewPointsHandler(pointsapp.NewGetPointsBalanceUseCase(ledger))

	var checkoutLimiter *middleware.KeyedLimiter
	if cfg.Server.CheckoutLimitEnabled() {
		checkoutLimiter = middleware.NewKeyedLimiter(cfg.Server.CheckoutRate, cfg.Server.CheckoutBurst, cfg.Server.CheckoutIdle)
	}

	gin.SetMode(cfg.Server.Mode)
	router := rest.NewRouter(rest.RouterDeps{
		Orders:          orderHandler,
		Points:          pointsHandler,
		Logger:          logger,
		CheckoutLimiter: checkoutLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
	return nil
}
