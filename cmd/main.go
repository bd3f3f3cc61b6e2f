package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/storefront/application/admin"
	productapp "github.com/muhammadheryan/storefront/application/product"
	"github.com/muhammadheryan/storefront/application/session"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	redisclient "github.com/muhammadheryan/storefront/cmd/redis"
	_ "github.com/muhammadheryan/storefront/docs"
	catalogRepo "github.com/muhammadheryan/storefront/repository/catalog"
	draftRepo "github.com/muhammadheryan/storefront/repository/draft"
	orderRepo "github.com/muhammadheryan/storefront/repository/order"
	productRepo "github.com/muhammadheryan/storefront/repository/product"
	redisRepo "github.com/muhammadheryan/storefront/repository/redis"
	regionRepo "github.com/muhammadheryan/storefront/repository/region"
	txRepo "github.com/muhammadheryan/storefront/repository/tx"
	userRepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// @title STOREFRONT API
// @version 1.0
// @description Storefront cart, checkout and admin order composition API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database, drafts only
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer rdb.Close()

	// Drafts still open and persist when the broker is down; they just won't auto expire.
	var publisher rabbitmq.DraftExpirationPublisher
	rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq, draft expiration disabled", zap.Error(err))
	} else {
		publisher = rmq
		defer rmq.Close()
	}

	storeClient := storeapi.NewClient(cfg.StoreAPI)

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(storeClient)
	CatalogRepo := catalogRepo.NewCatalogRepository(storeClient)
	RegionRepo := regionRepo.NewRegionRepository(storeClient, cfg.StoreAPI.RegionCacheTTL)
	OrderRepo := orderRepo.NewOrderRepository(storeClient)
	UserRepo := userRepo.NewUserRepository(storeClient)
	DraftRepo := draftRepo.NewDraftRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)

	// Initialize application layers
	ProductApp := productapp.NewProductApp(ProductRepo, CatalogRepo)
	UserApp := userapp.NewUserApp(cfg, RedisRepo)
	AdminApp := adminapp.NewAdminOrderApp(cfg, TxRepo, DraftRepo, OrderRepo, UserRepo, CatalogRepo, RegionRepo, publisher)
	Sessions := session.NewRegistry(cfg, RedisRepo, RegionRepo, OrderRepo)
	defer Sessions.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go Sessions.Run(ctx)

	httpTransport := transport.NewTransport(ProductApp, UserApp, AdminApp, Sessions, transport.Options{
		InternalAPIKey: cfg.Internal.APIKey,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed shutdown", zap.Error(err))
	}
}
