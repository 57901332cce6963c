package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go.uber.org/zap"

	adminpkg "github.com/mercadolivro/bookstore-backend/admin"
	adminrepo "github.com/mercadolivro/bookstore-backend/admin/repository"
	adminsvc "github.com/mercadolivro/bookstore-backend/admin/service"
	authpkg "github.com/mercadolivro/bookstore-backend/auth"
	authrepo "github.com/mercadolivro/bookstore-backend/auth/repository"
	authsvc "github.com/mercadolivro/bookstore-backend/auth/service"
	bookrepo "github.com/mercadolivro/bookstore-backend/book/repository"
	booksvc "github.com/mercadolivro/bookstore-backend/book/service"
	"github.com/mercadolivro/bookstore-backend/config"
	customerrepo "github.com/mercadolivro/bookstore-backend/customer/repository"
	customersvc "github.com/mercadolivro/bookstore-backend/customer/service"
	"github.com/mercadolivro/bookstore-backend/database"
	"github.com/mercadolivro/bookstore-backend/events"
	api "github.com/mercadolivro/bookstore-backend/handler"
	"github.com/mercadolivro/bookstore-backend/lifecycle"
	"github.com/mercadolivro/bookstore-backend/logger"
	"github.com/mercadolivro/bookstore-backend/middleware"
	"github.com/mercadolivro/bookstore-backend/purchase/listener"
	purchaserepo "github.com/mercadolivro/bookstore-backend/purchase/repository"
	purchasesvc "github.com/mercadolivro/bookstore-backend/purchase/service"
	"github.com/mercadolivro/bookstore-backend/realtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, stop := manager.SignalContext(context.Background())
	defer stop()

	db, err := setupDatabase(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("database setup failed", zap.Error(err))
	}
	manager.OnStop("postgres", func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	// event bus: listeners run inline (sync) or on a worker pool (async)
	var (
		publisher  events.Publisher
		subscriber events.Subscriber
	)
	switch cfg.Events.Mode {
	case config.EventsAsync:
		bus := events.NewAsyncBus(cfg.Events.QueueSize, cfg.Events.Workers, zapLogger)
		bus.Start()
		manager.OnStop("event_bus", bus.Close)
		publisher, subscriber = bus, bus
	default:
		bus := events.NewBus(zapLogger)
		publisher, subscriber = bus, bus
	}

	// repositories + services
	encoder := authpkg.NewBcryptEncoder(0)

	bookService := booksvc.NewBookService(bookrepo.NewGormBookRepo(db), zapLogger)
	customerService := customersvc.NewCustomerService(customerrepo.NewGormCustomerRepo(db), bookService, database.NewGormTransactor(db), encoder, zapLogger)
	purchaseService := purchasesvc.NewPurchaseService(purchaserepo.NewGormPurchaseRepo(db), publisher, zapLogger)
	authService := authsvc.NewAuthService(authrepo.NewGormAuthRepo(db), encoder, authpkg.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.TTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	}, zapLogger)
	mapper := purchasesvc.NewMapper(customerService, bookService)
	adminService := adminsvc.NewAdminService(adminrepo.NewGormAdminRepo(db), customerService, zapLogger)

	if cfg.Admin.Email != "" {
		if _, err := adminService.RegisterAdmin(appCtx, adminpkg.RegisterAdminRequest{
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		}); err != nil {
			zapLogger.Fatal("admin bootstrap failed", zap.Error(err))
		}
	}

	listener.NewGeneratedNfeListener(purchaseService, zapLogger).Register(subscriber)

	hub := realtime.NewHub(zapLogger)
	manager.OnStop("realtime_hub", hub.CloseAll)

	api.RequestTimeout = cfg.Context.RequestTimeout
	if err := api.RegisterValidators(customerService); err != nil {
		zapLogger.Fatal("register validators failed", zap.Error(err))
	}

	router := api.NewRouter(api.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Customers: api.NewCustomerHandler(customerService, purchaseService),
		Books:     api.NewBookHandler(bookService, customerService),
		Purchases: api.NewPurchaseHandler(purchaseService, mapper, hub, zapLogger),
		WS:        api.NewWSHandler(hub, zapLogger),
		Admin:     api.NewAdminHandler(adminService),
	}, api.RouterConfig{
		JWTSecret:   cfg.JWT.Secret,
		AuthLimiter: middleware.NewIPRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
	}, zapLogger)

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("events_mode", cfg.Events.Mode),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("server crashed", zap.Error(err))
			stop()
		}
	}()
	manager.OnStop("http_server", server.Shutdown)

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
