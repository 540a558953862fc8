package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/milanbojovic/OrderOook/pkg/config"
	"github.com/milanbojovic/OrderOook/pkg/logger"

	"github.com/milanbojovic/OrderOook/internal/api"
	"github.com/milanbojovic/OrderOook/internal/app/engine"
	"github.com/milanbojovic/OrderOook/internal/bootstrap"
	tradev1 "github.com/milanbojovic/OrderOook/internal/domain/trade/v1"
	"github.com/milanbojovic/OrderOook/internal/usecase/orderbook"
	tradepublisher "github.com/milanbojovic/OrderOook/internal/usecase/trade-publisher"
	"github.com/milanbojovic/OrderOook/internal/usecase/tradehistory"
	"github.com/milanbojovic/OrderOook/internal/usecase/user"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)

	logger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	log = logger
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	policy, err := orderbook.ParseMatchPolicy(cfg.Book.MatchPolicy)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "parse_match_policy"})
		return
	}

	store := orderbook.NewStore(
		orderbook.WithMatchPolicy(policy),
		orderbook.WithQuantityEpsilon(cfg.Book.QuantityEpsilon),
	)
	ledger := tradehistory.NewLedger()

	if cfg.SeedData {
		bootstrap.Seed(store, ledger)
		log.Info("seed dataset loaded")
	}

	admin, err := user.NewAdminUser(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "create_admin_user"})
		return
	}
	users := user.NewService(admin)

	var publisher tradev1.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = tradepublisher.NewPublisher(cfg.Kafka, log)
	}

	hub := api.NewHub(log)
	eng := engine.NewEngine(store, ledger, publisher, hub, log)

	if err := eng.Start(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "start_engine"})
		return
	}

	tokens := api.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	server := api.NewServer(eng, users, tokens, hub, cfg.Server, log)

	go func() {
		if err := server.Start(ctx); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "start_server"})
			cancel()
		}
	}()

	log.Info("order book service started", logger.Field{
		Key:   "addr",
		Value: cfg.Server.Addr,
	})

	select {
	case sig := <-sigChan:
		log.Info("received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
	case <-ctx.Done():
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "shutdown_server"})
	}
	if err := eng.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "stop_engine"})
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "close_publisher"})
		}
	}

	log.Info("shutdown complete")
	_ = log.Sync()
}
