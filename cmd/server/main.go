package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"fooddash-be/internal/cart"
	"fooddash-be/internal/catalog"
	"fooddash-be/internal/config"
	"fooddash-be/internal/contact"
	"fooddash-be/internal/handler"
	"fooddash-be/internal/logger"
	"fooddash-be/internal/order"
	"fooddash-be/internal/storage"
	"fooddash-be/internal/user"
)

// startServerFunc is swapped out in tests.
var startServerFunc = http.ListenAndServe

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	catalogSvc := catalog.NewService(items)

	cartSvc := cart.NewService(cart.NewRepository(store), catalogSvc)
	userSvc := user.NewService(user.NewRepository(store), user.NewSessionRepository(store), cfg.JWTSecret)
	orderSvc := order.NewService(order.NewRepository(store), cartSvc)
	contactSvc := contact.NewService(contact.NewRepository(store))

	ctx := context.Background()
	if err := cartSvc.Restore(ctx); err != nil {
		return err
	}
	if err := userSvc.Restore(ctx); err != nil {
		return err
	}

	go watchLedger(ctx, orderSvc)

	h := handler.New(catalogSvc, cartSvc, userSvc, orderSvc, contactSvc)

	logger.L().Info("🚀 server running",
		zap.String("port", cfg.AppPort),
		zap.String("store", cfg.StoreDriver),
	)
	return startServerFunc(":"+cfg.AppPort, h.Routes())
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StoreDriver == "redis" {
		return storage.NewRedisStore(cfg.RedisURL)
	}
	return storage.NewFileStore(cfg.DataDir)
}

// watchLedger surfaces order writes made by other processes sharing
// the same store.
func watchLedger(ctx context.Context, orderSvc order.Service) {
	ch, err := orderSvc.WatchLedger(ctx)
	if err != nil {
		logger.L().Warn("ledger watch unavailable", zap.Error(err))
		return
	}
	for range ch {
		logger.L().Info("order ledger changed externally")
	}
}
