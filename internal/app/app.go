package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/mrwnh/eventreg/internal/catalog"
	"github.com/mrwnh/eventreg/internal/config"
	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/gateway"
	"github.com/mrwnh/eventreg/internal/handler"
	"github.com/mrwnh/eventreg/internal/middleware"
	"github.com/mrwnh/eventreg/internal/notification"
	"github.com/mrwnh/eventreg/internal/repository"
	"github.com/mrwnh/eventreg/internal/router"
	"github.com/mrwnh/eventreg/internal/service"
	"github.com/mrwnh/eventreg/internal/storage"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"eventreg",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	registrationRepo := repository.NewRegistrationRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	commentRepo := repository.NewCommentRepo(a.db)
	checkInRepo := repository.NewCheckInRepo(a.db)

	cat, err := buildCatalog(a.cfg)
	if err != nil {
		return fmt.Errorf("build ticket catalog: %w", err)
	}

	store, err := storage.NewCloudinaryStore(
		a.cfg.Cloudinary.CloudName,
		a.cfg.Cloudinary.APIKey,
		a.cfg.Cloudinary.APISecret,
		a.cfg.Cloudinary.Folder,
	)
	if err != nil {
		return fmt.Errorf("init object store: %w", err)
	}

	notifier := notification.NewSMTPNotifier(
		a.cfg.SMTP.Host,
		a.cfg.SMTP.Addr(),
		a.cfg.SMTP.Username,
		a.cfg.SMTP.Password,
		a.cfg.SMTP.From,
		a.log,
	)

	gatewayClient := gateway.NewClient(a.cfg.Gateway.BaseURL, a.cfg.Gateway.Token, a.cfg.Gateway.Timeout)

	registrationService := service.NewRegistrationService(
		registrationRepo, paymentRepo, commentRepo, checkInRepo,
		store, notifier, a.cfg.Server.PublicURL, a.log,
	)
	paymentService := service.NewPaymentService(paymentRepo, registrationRepo, cat, a.log)
	checkoutService := service.NewCheckoutService(gatewayClient, paymentRepo, registrationRepo, cat, a.log)
	checkInService := service.NewCheckInService(checkInRepo, registrationRepo, paymentRepo, a.log)

	h := handler.NewHandler(
		registrationService,
		paymentService,
		checkoutService,
		checkInService,
		store,
		a.cfg.Gateway.DefaultCurrency,
	)

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	prices := make(map[domain.TicketType]catalog.Price, len(cfg.Tickets.Prices))
	for name, p := range cfg.Tickets.Prices {
		t := domain.TicketType(strings.ToUpper(name))
		prices[t] = catalog.Price{
			Amount:   decimal.NewFromFloat(p.Amount),
			Currency: strings.ToUpper(p.Currency),
		}
	}
	return catalog.New(prices, cfg.Gateway.Entities)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
