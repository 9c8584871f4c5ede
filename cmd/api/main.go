package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mobimart/mobimart-backend/api/routes"
	"github.com/mobimart/mobimart-backend/internal/cart"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/checkout"
	"github.com/mobimart/mobimart-backend/internal/comparison"
	"github.com/mobimart/mobimart-backend/internal/discount"
	"github.com/mobimart/mobimart-backend/internal/filter"
	"github.com/mobimart/mobimart-backend/internal/notify"
	"github.com/mobimart/mobimart-backend/internal/search"
	"github.com/mobimart/mobimart-backend/internal/storage"
	"github.com/mobimart/mobimart-backend/pkg/config"
	"github.com/mobimart/mobimart-backend/pkg/db"
	"github.com/mobimart/mobimart-backend/pkg/logger"
	"github.com/mobimart/mobimart-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	products := catalog.NewRepository(dbClient.DB())
	offers := catalog.NewOfferRepository(dbClient.DB())
	orders := catalog.NewOrderRepository(dbClient.DB())

	kv, err := storage.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	cartStore, err := cart.NewStore(context.Background(), kv, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to hydrate cart", err)
		os.Exit(1)
	}
	comparisonStore, err := comparison.NewStore(context.Background(), kv, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to hydrate comparison", err)
		os.Exit(1)
	}
	recentStore, err := search.NewStore(context.Background(), kv, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to hydrate recent searches", err)
		os.Exit(1)
	}

	discountEngine, err := discount.NewEngine(offers)
	if err != nil {
		logg.Error(context.Background(), "failed to create discount engine", err)
		os.Exit(1)
	}

	deps := routes.Deps{
		Config:     cfg,
		Logger:     logg,
		DB:         dbClient,
		KV:         kv,
		Products:   products,
		Offers:     offers,
		Orders:     orders,
		Cart:       cartStore,
		Comparison: comparisonStore,
		Discounts:  discount.NewTracker(discountEngine),
		Checkout:   checkout.NewValidator(cfg.Checkout.StrictCardValidation),
		Filter:     filter.NewEngine(),
		Recent:     recentStore,
		Sink:       notify.NewLogSink(logg),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(deps),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
